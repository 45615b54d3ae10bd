// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"reflect"
	"sync"

	"github.com/tallyledger/tallyd/fault"
)

// process-wide registry of claimed witness types
var witnessData struct {
	sync.Mutex
	claimed map[reflect.Type]struct{}
}

// Witness - proof that the caller is the first and only claimant of
// the value type T
//
// a witness can be constructed at most once per type for the
// lifetime of the process and consumed at most once; it is the
// authorization token for creating T's supply
type Witness[T any] struct {
	consumed bool
}

// NewWitness - claim the one-time witness for T
//
// the second and every later call for the same T fails with
// ErrBadWitness
func NewWitness[T any]() (*Witness[T], error) {
	marker := reflect.TypeOf((*T)(nil)).Elem()

	witnessData.Lock()
	defer witnessData.Unlock()

	if nil == witnessData.claimed {
		witnessData.claimed = make(map[reflect.Type]struct{})
	}
	if _, ok := witnessData.claimed[marker]; ok {
		return nil, fault.ErrBadWitness
	}
	witnessData.claimed[marker] = struct{}{}

	return &Witness[T]{}, nil
}

// consume - single-use check, called by CreateSupply
func (w *Witness[T]) consume() error {
	if nil == w {
		return fault.ErrBadWitness
	}
	if w.consumed {
		return fault.ErrWitnessConsumed
	}
	w.consumed = true
	return nil
}
