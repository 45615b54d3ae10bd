// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/objectid"
)

// Entry - one stored value together with its dynamic type tag
//
// the tag lets heterogeneous collections detect a lookup under the
// wrong value type without decoding the value bytes
type Entry struct {
	Type string
	Data []byte
}

// Store - the keyed object store consumed by the ledger core
//
// All mutations within one transaction are serialized by the
// embedding runtime; the store performs no locking of its own beyond
// protecting its internal structures.
type Store interface {

	// Put - store an entry under (owner, key); overwrites silently,
	// presence checks are the caller's concern
	Put(owner objectid.ObjectId, key []byte, entry Entry)

	// Get - fetch the entry under (owner, key)
	Get(owner objectid.ObjectId, key []byte) (Entry, bool)

	// Remove - delete and return the entry under (owner, key)
	Remove(owner objectid.ObjectId, key []byte) (Entry, bool)

	// Has - true if an entry of the given type is stored under (owner, key);
	// an empty typeTag matches any stored type
	Has(owner objectid.ObjectId, key []byte, typeTag string) bool

	// DeleteOwner - record that the owner's handle was deleted
	//
	// pure bookkeeping: ids are never reused, remaining entries are
	// unreachable once the handle is gone
	DeleteOwner(owner objectid.ObjectId, epoch uint64)
}

// entry wire format: tag length ++ tag ++ data
func packEntry(entry Entry) []byte {
	buffer := make([]byte, 2, 2+len(entry.Type)+len(entry.Data))
	binary.BigEndian.PutUint16(buffer, uint16(len(entry.Type)))
	buffer = append(buffer, entry.Type...)
	buffer = append(buffer, entry.Data...)
	return buffer
}

func unpackEntry(buffer []byte) Entry {
	if len(buffer) < 2 {
		fault.Panicf("storage: truncated entry record: %x", buffer)
	}
	tagLength := int(binary.BigEndian.Uint16(buffer[:2]))
	if len(buffer) < 2+tagLength {
		fault.Panicf("storage: truncated entry tag: %x", buffer)
	}
	return Entry{
		Type: string(buffer[2 : 2+tagLength]),
		Data: buffer[2+tagLength:],
	}
}
