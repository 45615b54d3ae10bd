// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/tallyledger/tallyd/fault"
)

// AddressLength - number of bytes in an account address
const AddressLength = 32

// Address - opaque account address as assigned by the embedding runtime
//
// the zero value means "no owner" and is never a valid transfer target
type Address [AddressLength]byte

// IsZero - check for the unassigned address
func (address Address) IsZero() bool {
	return Address{} == address
}

// Bytes - convert an address to a byte slice
func (address Address) Bytes() []byte {
	return address[:]
}

// String - hex representation for use by the fmt package (for %s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// MarshalText - convert an address to hex text
func (address Address) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(AddressLength))
	hex.Encode(buffer, address[:])
	return buffer, nil
}

// UnmarshalText - convert a hex text representation to an address
func (address *Address) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(AddressLength) {
		return fault.ErrNotAddress
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if AddressLength != byteCount {
		return fault.ErrNotAddress
	}
	copy(address[:], buffer)
	return nil
}
