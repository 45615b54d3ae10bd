// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package optional - a 0-or-1 element container
//
// Used throughout the ledger core to represent a possibly absent
// value without resorting to nil references. The container never
// holds more than one element.
package optional

import (
	"github.com/tallyledger/tallyd/fault"
)

// Optional - holds zero or one values of T
//
// the zero value is an empty container, identical to None
type Optional[T any] struct {
	value   T
	present bool
}

// None - an empty container
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Some - a container holding value
func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// IsSome - true if a value is held
func (o *Optional[T]) IsSome() bool {
	return o.present
}

// IsNone - true if the container is empty
func (o *Optional[T]) IsNone() bool {
	return !o.present
}

// Borrow - read the held value
func (o *Optional[T]) Borrow() (T, error) {
	if !o.present {
		var zero T
		return zero, fault.ErrNotPresent
	}
	return o.value, nil
}

// BorrowMut - a pointer to the held value for in-place update
//
// the pointer is only valid while the container still holds the
// value; Extract invalidates it
func (o *Optional[T]) BorrowMut() (*T, error) {
	if !o.present {
		return nil, fault.ErrNotPresent
	}
	return &o.value, nil
}

// Fill - store a value into an empty container
func (o *Optional[T]) Fill(value T) error {
	if o.present {
		return fault.ErrAlreadyPresent
	}
	o.value = value
	o.present = true
	return nil
}

// Extract - remove and return the held value, leaving the container empty
func (o *Optional[T]) Extract() (T, error) {
	if !o.present {
		var zero T
		return zero, fault.ErrNotPresent
	}
	value := o.value
	var zero T
	o.value = zero
	o.present = false
	return value, nil
}

// Swap - replace the held value, returning the previous one
func (o *Optional[T]) Swap(value T) (T, error) {
	if !o.present {
		var zero T
		return zero, fault.ErrNotPresent
	}
	previous := o.value
	o.value = value
	return previous, nil
}

// SwapOrFill - replace if a value is held, fill otherwise
//
// returns the previous state of the container; never fails
func (o *Optional[T]) SwapOrFill(value T) Optional[T] {
	previous := *o
	o.value = value
	o.present = true
	return previous
}
