// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package table - map collections whose entries live in the keyed store
//
// A Table or Bag holds only its own identity and a size counter;
// every entry is stored externally under (identity, key). The size
// counter moves in lock-step with every store mutation, and entries
// are never enumerated, only addressed by exact key.
//
// Table fixes one key and one value type for all entries; Bag
// permits a different value type per key, checked dynamically at
// lookup.
package table

import (
	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/object"
	"github.com/tallyledger/tallyd/objectid"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// Table - homogeneous external map
type Table[K comparable, V any] struct {
	handle *object.Handle
	size   uint64
	store  storage.Store
}

// NewTable - an empty table bound to a fresh identity
//
// side effect: allocates an object id
func NewTable[K comparable, V any](ctx *transaction.Context, store storage.Store) *Table[K, V] {
	return &Table[K, V]{
		handle: object.New(ctx),
		store:  store,
	}
}

// Id - the table's object id
func (t *Table[K, V]) Id() objectid.ObjectId {
	return t.handle.Id()
}

// Add - store a new entry
func (t *Table[K, V]) Add(key K, value V) error {
	fieldKey := encodeKey(key)
	if t.store.Has(t.handle.Id(), fieldKey, "") {
		return fault.ErrEntryAlreadyExists
	}
	t.store.Put(t.handle.Id(), fieldKey, encodeValue(value))
	t.size += 1
	return nil
}

// Borrow - read the entry under key
func (t *Table[K, V]) Borrow(key K) (V, error) {
	entry, found := t.store.Get(t.handle.Id(), encodeKey(key))
	if !found {
		var zero V
		return zero, fault.ErrEntryNotFound
	}
	return decodeValue[V](entry)
}

// Mutate - update the entry under key in place
//
// the exclusive-borrow rendering: fn receives the single live copy,
// the result is written back only when fn succeeds
func (t *Table[K, V]) Mutate(key K, fn func(*V) error) error {
	value, err := t.Borrow(key)
	if nil != err {
		return err
	}
	if err := fn(&value); nil != err {
		return err
	}
	t.store.Put(t.handle.Id(), encodeKey(key), encodeValue(value))
	return nil
}

// Remove - delete and return the entry under key
func (t *Table[K, V]) Remove(key K) (V, error) {
	entry, found := t.store.Remove(t.handle.Id(), encodeKey(key))
	if !found {
		var zero V
		return zero, fault.ErrEntryNotFound
	}
	t.size -= 1
	return decodeValue[V](entry)
}

// Contains - true if an entry exists under key
func (t *Table[K, V]) Contains(key K) bool {
	return t.store.Has(t.handle.Id(), encodeKey(key), "")
}

// Length - number of live entries
func (t *Table[K, V]) Length() uint64 {
	return t.size
}

// IsEmpty - true if no entries are held
func (t *Table[K, V]) IsEmpty() bool {
	return 0 == t.size
}

// DestroyEmpty - destroy an empty table's identity
func (t *Table[K, V]) DestroyEmpty(ctx *transaction.Context) error {
	if 0 != t.size {
		return fault.ErrNotEmpty
	}
	t.handle.Delete(ctx, t.store)
	return nil
}

// Drop - destroy the identity regardless of remaining entries
//
// legal only when V carries no resource obligations; the entries
// become unreachable, which is safe for plain data. A Bag has no
// equivalent because its value types are not statically known.
func (t *Table[K, V]) Drop(ctx *transaction.Context) {
	t.handle.Delete(ctx, t.store)
}
