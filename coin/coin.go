// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin - ownable, transferable wrappers around balances
//
// A Coin pairs an object handle with a balance so that value can be
// stored and transferred like any other object. The TreasuryCap
// wraps a supply; holding it is the mint and burn authority for the
// value type.
package coin

import (
	"github.com/tallyledger/tallyd/balance"
	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/object"
	"github.com/tallyledger/tallyd/objectid"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// Coin - ownable fungible value
type Coin[T any] struct {
	handle  *object.Handle
	balance *balance.Balance[T]
}

// FromBalance - wrap a balance into a fresh coin
//
// consumes the balance; side effect: allocates an object id
func FromBalance[T any](ctx *transaction.Context, b *balance.Balance[T]) *Coin[T] {
	return &Coin[T]{
		handle:  object.New(ctx),
		balance: b.Withdraw(),
	}
}

// Id - the coin's object id
func (c *Coin[T]) Id() objectid.ObjectId {
	return c.handle.Id()
}

// Value - units held by this coin
func (c *Coin[T]) Value() uint64 {
	return c.balance.Value()
}

// IntoBalance - unwrap the coin, destroying its identity
func (c *Coin[T]) IntoBalance(ctx *transaction.Context, store storage.Store) *balance.Balance[T] {
	c.handle.Delete(ctx, store)
	return c.balance.Withdraw()
}

// Join - merge other into c, destroying other's identity
func (c *Coin[T]) Join(ctx *transaction.Context, store storage.Store, other *Coin[T]) error {
	b := other.IntoBalance(ctx, store)
	_, err := c.balance.Join(b)
	return err
}

// Split - carve amount units into a new coin
//
// side effect: allocates an object id for the new coin
func (c *Coin[T]) Split(ctx *transaction.Context, amount uint64) (*Coin[T], error) {
	part, err := c.balance.Split(amount)
	if nil != err {
		return nil, err
	}
	return FromBalance(ctx, part), nil
}

// DivideIntoN - split into n parts as evenly as the unit allows
//
// produces n-1 new coins of value/n units each, rounded down; the
// remainder stays in c, so the parts differ by at most n-1 units in
// total
func (c *Coin[T]) DivideIntoN(ctx *transaction.Context, n uint64) ([]*Coin[T], error) {
	if 0 == n {
		return nil, fault.ErrDivideByZero
	}
	if n > c.Value() {
		return nil, fault.ErrInsufficientFunds
	}

	each := c.Value() / n
	parts := make([]*Coin[T], 0, n-1)
	for i := uint64(1); i < n; i += 1 {
		part, err := c.Split(ctx, each)
		if nil != err {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// DestroyZero - dispose of a coin holding no units
func (c *Coin[T]) DestroyZero(ctx *transaction.Context, store storage.Store) error {
	if err := c.balance.DestroyZero(); nil != err {
		return err
	}
	c.handle.Delete(ctx, store)
	return nil
}
