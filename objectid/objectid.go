// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/tallyledger/tallyd/fault"
)

// lengths
const (
	Length       = 32 // number of bytes in an object id
	DigestLength = 32 // required width of a transaction digest
)

// ObjectId - globally unique identifier naming one ledger object
// stored as a fixed byte array
// represented as a hex value for print and JSON encoding
// to convert to bytes just use id[:]
type ObjectId [Length]byte

// Derive - compute the object id for the count'th allocation of the
// transaction identified by digest
//
// SHA3-256 over digest ++ big endian count; the embedding runtime
// guarantees digest uniqueness per transaction, the count makes each
// allocation within one transaction distinct
func Derive(digest []byte, count uint64) (ObjectId, error) {
	if DigestLength != len(digest) {
		return ObjectId{}, fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, 0, DigestLength+8)
	buffer = append(buffer, digest...)

	sequence := make([]byte, 8)
	binary.BigEndian.PutUint64(sequence, count)
	buffer = append(buffer, sequence...)

	return ObjectId(sha3.Sum256(buffer)), nil
}

// Bytes - convert an object id to a byte slice
func (id ObjectId) Bytes() []byte {
	return id[:]
}

// IsZero - true for the all-zero id, which no Derive call can produce
func (id ObjectId) IsZero() bool {
	return ObjectId{} == id
}

// String - convert an object id to a hex string for use by the fmt package (for %s)
func (id ObjectId) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - convert an object id to a hex string for use by the fmt package (for %#v)
func (id ObjectId) GoString() string {
	return "<object:" + hex.EncodeToString(id[:]) + ">"
}

// ShortString - compact base58 representation for logs
func (id ObjectId) ShortString() string {
	return base58.Encode(id[:])
}

// Scan - convert a hex representation to an object id for use by the format package scan routines
func (id *ObjectId) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.ErrNotObjectId
	}

	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrNotObjectId
	}

	copy(id[:], buffer)
	return nil
}

// MarshalText - convert an object id to hex text
func (id ObjectId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert a hex text representation to an object id
func (id *ObjectId) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(Length) {
		return fault.ErrNotObjectId
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrNotObjectId
	}
	copy(id[:], buffer)
	return nil
}
