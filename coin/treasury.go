// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"github.com/tallyledger/tallyd/balance"
	"github.com/tallyledger/tallyd/event"
	"github.com/tallyledger/tallyd/object"
	"github.com/tallyledger/tallyd/objectid"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// EventCurrencyRegistered - event kind emitted once per CreateCurrency
const EventCurrencyRegistered = "currency.registered"

// CurrencyRegistered - payload for off-system indexers
type CurrencyRegistered struct {
	Treasury objectid.ObjectId   `json:"treasury"`
	Creator  transaction.Address `json:"creator"`
	Symbol   string              `json:"symbol"`
	Decimals uint8               `json:"decimals"`
}

// TreasuryCap - ownable mint and burn authority for T
type TreasuryCap[T any] struct {
	handle *object.Handle
	supply *balance.Supply[T]
}

// CreateCurrency - establish T as a currency
//
// consumes the one-time witness, creates the single supply and wraps
// it into a transferable treasury capability; emits the currency
// registration event carrying the display metadata
func CreateCurrency[T any](ctx *transaction.Context, w *balance.Witness[T], decimals uint8, symbol string) (*TreasuryCap[T], error) {
	supply, err := balance.CreateSupply(w)
	if nil != err {
		return nil, err
	}

	treasury := &TreasuryCap[T]{
		handle: object.New(ctx),
		supply: supply,
	}

	event.Send(EventCurrencyRegistered, CurrencyRegistered{
		Treasury: treasury.handle.Id(),
		Creator:  ctx.Sender(),
		Symbol:   symbol,
		Decimals: decimals,
	})

	return treasury, nil
}

// Id - the capability's object id
func (tc *TreasuryCap[T]) Id() objectid.ObjectId {
	return tc.handle.Id()
}

// TotalSupply - circulating units of T
func (tc *TreasuryCap[T]) TotalSupply() uint64 {
	return tc.supply.Value()
}

// MintBalance - mint units as a bare balance
func (tc *TreasuryCap[T]) MintBalance(amount uint64) (*balance.Balance[T], error) {
	return tc.supply.Increase(amount)
}

// Mint - mint units as a fresh coin
func (tc *TreasuryCap[T]) Mint(ctx *transaction.Context, amount uint64) (*Coin[T], error) {
	b, err := tc.supply.Increase(amount)
	if nil != err {
		return nil, err
	}
	return FromBalance(ctx, b), nil
}

// BurnBalance - burn a bare balance, consuming it
func (tc *TreasuryCap[T]) BurnBalance(b *balance.Balance[T]) (uint64, error) {
	return tc.supply.Decrease(b)
}

// Burn - burn a coin, destroying its identity
func (tc *TreasuryCap[T]) Burn(ctx *transaction.Context, store storage.Store, c *Coin[T]) (uint64, error) {
	b := c.IntoBalance(ctx, store)
	return tc.supply.Decrease(b)
}
