// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - conservation-checked fungible value counters
//
// One Supply[T] is the authoritative total of circulating units of
// the value type T; Balance[T] values are detached claims on that
// supply. Units enter circulation only through Supply.Increase and
// leave only through Supply.Decrease, so at any moment the live
// balances of T sum to exactly the supply value.
//
// Balances are linear: Join, Decrease and split consumption empty
// the source value, they never duplicate it.
package balance

import (
	"math"

	"github.com/tallyledger/tallyd/fault"
)

// Supply - total units of T in circulation
//
// at most one exists per T, enforced by the one-time witness
type Supply[T any] struct {
	value uint64
}

// Balance - a detached claim on T's supply
//
// not independently ownable; wrap in a coin.Coin for storage and
// transfer. The zero value is an empty balance.
type Balance[T any] struct {
	value uint64
}

// CreateSupply - establish the single supply for T
//
// consumes the witness; starts at zero
func CreateSupply[T any](w *Witness[T]) (*Supply[T], error) {
	if err := w.consume(); nil != err {
		return nil, err
	}
	return &Supply[T]{}, nil
}

// Value - current circulating total
func (s *Supply[T]) Value() uint64 {
	return s.value
}

// Increase - mint amount new units, returning them as a balance
//
// the only path by which units enter circulation
func (s *Supply[T]) Increase(amount uint64) (*Balance[T], error) {
	if amount > math.MaxUint64-s.value {
		return nil, fault.ErrOverflow
	}
	s.value += amount
	return &Balance[T]{value: amount}, nil
}

// Decrease - burn the units held by b, consuming it
//
// the only path by which units leave circulation; b larger than the
// supply is unreachable while the conservation invariant holds, the
// check is kept anyway
func (s *Supply[T]) Decrease(b *Balance[T]) (uint64, error) {
	if b.value > s.value {
		return 0, fault.ErrOverflow
	}
	amount := b.value
	b.value = 0
	s.value -= amount
	return amount, nil
}

// Zero - an empty balance
func Zero[T any]() *Balance[T] {
	return &Balance[T]{}
}

// Value - units held
func (b *Balance[T]) Value() uint64 {
	return b.value
}

// Join - merge other into b, consuming other
//
// both sides are bounded by the same supply so the sum cannot
// exceed it; the overflow check guards corrupted callers
func (b *Balance[T]) Join(other *Balance[T]) (uint64, error) {
	if other.value > math.MaxUint64-b.value {
		return 0, fault.ErrOverflow
	}
	b.value += other.value
	other.value = 0
	return b.value, nil
}

// Split - carve amount units out of b into a new balance
func (b *Balance[T]) Split(amount uint64) (*Balance[T], error) {
	if amount > b.value {
		return nil, fault.ErrInsufficientFunds
	}
	b.value -= amount
	return &Balance[T]{value: amount}, nil
}

// Withdraw - take all units, leaving b empty
func (b *Balance[T]) Withdraw() *Balance[T] {
	amount := b.value
	b.value = 0
	return &Balance[T]{value: amount}
}

// DestroyZero - dispose of an exactly-zero balance
func (b *Balance[T]) DestroyZero() error {
	if 0 != b.value {
		return fault.ErrNonZero
	}
	return nil
}
