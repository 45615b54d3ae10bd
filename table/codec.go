// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"encoding/json"
	"reflect"

	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/storage"
)

// dynamic type tag recorded with every stored value
func typeTagOf[V any]() string {
	return reflect.TypeOf((*V)(nil)).Elem().String()
}

// field key bytes: key type tag ++ 0x00 ++ canonical key encoding
//
// the tag prefix keeps equal encodings of different key types apart,
// which matters for bags whose keys are not uniformly typed
func encodeKey[K comparable](key K) []byte {
	data, err := json.Marshal(key)
	fault.PanicIfError("table: encode key", err)

	tag := typeTagOf[K]()
	buffer := make([]byte, 0, len(tag)+1+len(data))
	buffer = append(buffer, tag...)
	buffer = append(buffer, 0x00)
	return append(buffer, data...)
}

func encodeValue[V any](value V) storage.Entry {
	data, err := json.Marshal(value)
	fault.PanicIfError("table: encode value", err)
	return storage.Entry{
		Type: typeTagOf[V](),
		Data: data,
	}
}

// decode checks the dynamic tag first: an entry stored under a
// different value type is a type mismatch, not a decoding error
func decodeValue[V any](entry storage.Entry) (V, error) {
	var value V
	if entry.Type != typeTagOf[V]() {
		return value, fault.ErrTypeMismatch
	}
	err := json.Unmarshal(entry.Data, &value)
	fault.PanicIfError("table: decode value", err)
	return value, nil
}
