// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyConsumed      = ProcessError("object handle was already consumed")
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrAlreadyPresent       = ExistsError("optional already holds a value")
	ErrBadWitness           = InvalidError("witness type was already claimed")
	ErrDivideByZero         = InvalidError("division count is zero")
	ErrEntryAlreadyExists   = ExistsError("entry already exists")
	ErrEntryNotFound        = NotFoundError("entry not found")
	ErrInsufficientFunds    = InvalidError("balance is insufficient")
	ErrInvalidDigestLength  = LengthError("transaction digest length is invalid")
	ErrNonZero              = InvalidError("balance is not zero")
	ErrNotAddress           = InvalidError("not an address")
	ErrNotEmpty             = InvalidError("collection is not empty")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrNotObjectId          = InvalidError("not an object id")
	ErrNotOwned             = InvalidError("object is not exclusively owned")
	ErrNotPresent           = NotFoundError("optional holds no value")
	ErrOverflow             = ProcessError("counter overflow")
	ErrSharedNonNewObject   = InvalidError("cannot share an object from a previous transaction")
	ErrSupplyAlreadyCreated = ExistsError("supply already created for value type")
	ErrTypeMismatch         = InvalidError("entry stored under a different value type")
	ErrWitnessConsumed      = InvalidError("witness was already consumed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
