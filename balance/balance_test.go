// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyledger/tallyd/balance"
	"github.com/tallyledger/tallyd/fault"
)

// each test uses its own marker type: witnesses are single-use per
// type for the whole process
type (
	markerWitnessOnce  struct{}
	markerWitnessTwice struct{}
	markerMintBurn     struct{}
	markerOverflow     struct{}
	markerJoinSplit    struct{}
	markerZero         struct{}
	markerConservation struct{}
	markerWithdraw     struct{}
)

func newSupply[T any](t *testing.T) *balance.Supply[T] {
	t.Helper()
	w, err := balance.NewWitness[T]()
	assert.NoError(t, err, "witness")
	s, err := balance.CreateSupply(w)
	assert.NoError(t, err, "supply")
	return s
}

func TestWitnessIsSingleUsePerType(t *testing.T) {
	w, err := balance.NewWitness[markerWitnessOnce]()
	assert.NoError(t, err, "first claim")
	assert.NotNil(t, w, "witness value")

	_, err = balance.NewWitness[markerWitnessOnce]()
	assert.Equal(t, fault.ErrBadWitness, err, "second claim")
}

func TestWitnessCannotCreateTwoSupplies(t *testing.T) {
	w, err := balance.NewWitness[markerWitnessTwice]()
	assert.NoError(t, err, "claim")

	_, err = balance.CreateSupply(w)
	assert.NoError(t, err, "first supply")

	_, err = balance.CreateSupply(w)
	assert.Equal(t, fault.ErrWitnessConsumed, err, "consumed witness")

	var nilWitness *balance.Witness[markerWitnessTwice]
	_, err = balance.CreateSupply(nilWitness)
	assert.Equal(t, fault.ErrBadWitness, err, "nil witness")
}

func TestIncreaseDecrease(t *testing.T) {
	s := newSupply[markerMintBurn](t)
	assert.Equal(t, uint64(0), s.Value(), "fresh supply")

	b, err := s.Increase(100)
	assert.NoError(t, err, "mint")
	assert.Equal(t, uint64(100), b.Value(), "minted balance")
	assert.Equal(t, uint64(100), s.Value(), "supply after mint")

	part, err := b.Split(30)
	assert.NoError(t, err, "split")

	amount, err := s.Decrease(part)
	assert.NoError(t, err, "burn")
	assert.Equal(t, uint64(30), amount, "burned amount")
	assert.Equal(t, uint64(70), s.Value(), "supply after burn")
	assert.Equal(t, uint64(0), part.Value(), "burned balance emptied")
}

func TestIncreaseOverflow(t *testing.T) {
	s := newSupply[markerOverflow](t)

	_, err := s.Increase(math.MaxUint64)
	assert.NoError(t, err, "mint to maximum")

	_, err = s.Increase(1)
	assert.Equal(t, fault.ErrOverflow, err, "mint past maximum")
	assert.Equal(t, uint64(math.MaxUint64), s.Value(), "supply unchanged on failure")
}

func TestSplitJoinRestoresValue(t *testing.T) {
	s := newSupply[markerJoinSplit](t)
	b, err := s.Increase(100)
	assert.NoError(t, err, "mint")

	part, err := b.Split(60)
	assert.NoError(t, err, "split")
	assert.Equal(t, uint64(40), b.Value(), "remainder")
	assert.Equal(t, uint64(60), part.Value(), "split result")

	total, err := b.Join(part)
	assert.NoError(t, err, "join")
	assert.Equal(t, uint64(100), total, "join total")
	assert.Equal(t, uint64(100), b.Value(), "original value restored")
	assert.Equal(t, uint64(0), part.Value(), "joined balance consumed")

	_, err = b.Split(101)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "split beyond value")
}

func TestZeroAndDestroy(t *testing.T) {
	z := balance.Zero[markerZero]()
	assert.Equal(t, uint64(0), z.Value(), "zero balance")
	assert.NoError(t, z.DestroyZero(), "destroy zero")

	s := newSupply[markerZero](t)
	b, err := s.Increase(5)
	assert.NoError(t, err, "mint")
	assert.Equal(t, fault.ErrNonZero, b.DestroyZero(), "destroy non-zero")
}

// mint 100, split 60, join the 40 remainder with a
// fresh mint of 10 - outstanding balances must always sum to the
// supply value
func TestConservationScenario(t *testing.T) {
	s := newSupply[markerConservation](t)

	b, err := s.Increase(100)
	assert.NoError(t, err, "mint 100")

	sixty, err := b.Split(60)
	assert.NoError(t, err, "split 60")

	ten, err := s.Increase(10)
	assert.NoError(t, err, "mint 10")

	total, err := b.Join(ten)
	assert.NoError(t, err, "join")
	assert.Equal(t, uint64(50), total, "40 remainder + 10 fresh")

	outstanding := b.Value() + sixty.Value()
	assert.Equal(t, s.Value(), outstanding, "live balances equal supply")
	assert.Equal(t, uint64(110), s.Value(), "supply after both mints")
}

func TestWithdraw(t *testing.T) {
	s := newSupply[markerWithdraw](t)
	b, err := s.Increase(9)
	assert.NoError(t, err, "mint")

	all := b.Withdraw()
	assert.Equal(t, uint64(9), all.Value(), "withdrawn units")
	assert.Equal(t, uint64(0), b.Value(), "source emptied")
	assert.NoError(t, b.DestroyZero(), "source destroyable")
}
