// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/object"
	"github.com/tallyledger/tallyd/objectid"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// Bag - heterogeneous external map
//
// entry operations are package functions because each call site
// chooses its own key and value types; lookups under the wrong value
// type fail with ErrTypeMismatch
type Bag struct {
	handle *object.Handle
	size   uint64
	store  storage.Store
}

// NewBag - an empty bag bound to a fresh identity
//
// side effect: allocates an object id
func NewBag(ctx *transaction.Context, store storage.Store) *Bag {
	return &Bag{
		handle: object.New(ctx),
		store:  store,
	}
}

// Id - the bag's object id
func (b *Bag) Id() objectid.ObjectId {
	return b.handle.Id()
}

// BagAdd - store a new entry of any value type
func BagAdd[K comparable, V any](b *Bag, key K, value V) error {
	fieldKey := encodeKey(key)
	if b.store.Has(b.handle.Id(), fieldKey, "") {
		return fault.ErrEntryAlreadyExists
	}
	b.store.Put(b.handle.Id(), fieldKey, encodeValue(value))
	b.size += 1
	return nil
}

// BagBorrow - read the entry under key as value type V
func BagBorrow[V any, K comparable](b *Bag, key K) (V, error) {
	entry, found := b.store.Get(b.handle.Id(), encodeKey(key))
	if !found {
		var zero V
		return zero, fault.ErrEntryNotFound
	}
	return decodeValue[V](entry)
}

// BagMutate - update the entry under key in place as value type V
func BagMutate[V any, K comparable](b *Bag, key K, fn func(*V) error) error {
	value, err := BagBorrow[V](b, key)
	if nil != err {
		return err
	}
	if err := fn(&value); nil != err {
		return err
	}
	b.store.Put(b.handle.Id(), encodeKey(key), encodeValue(value))
	return nil
}

// BagRemove - delete and return the entry under key as value type V
func BagRemove[V any, K comparable](b *Bag, key K) (V, error) {
	fieldKey := encodeKey(key)
	entry, found := b.store.Get(b.handle.Id(), fieldKey)
	if !found {
		var zero V
		return zero, fault.ErrEntryNotFound
	}

	// type check before the delete so a mismatch removes nothing
	value, err := decodeValue[V](entry)
	if nil != err {
		return value, err
	}

	b.store.Remove(b.handle.Id(), fieldKey)
	b.size -= 1
	return value, nil
}

// BagContains - true if an entry exists under key, of any value type
func BagContains[K comparable](b *Bag, key K) bool {
	return b.store.Has(b.handle.Id(), encodeKey(key), "")
}

// BagContainsTyped - true if an entry of value type V exists under key
func BagContainsTyped[V any, K comparable](b *Bag, key K) bool {
	return b.store.Has(b.handle.Id(), encodeKey(key), typeTagOf[V]())
}

// Length - number of live entries
func (b *Bag) Length() uint64 {
	return b.size
}

// IsEmpty - true if no entries are held
func (b *Bag) IsEmpty() bool {
	return 0 == b.size
}

// DestroyEmpty - destroy an empty bag's identity
//
// the only way to dispose of a bag: its value types are unknown, so
// a non-empty bag can never be dropped
func (b *Bag) DestroyEmpty(ctx *transaction.Context) error {
	if 0 != b.size {
		return fault.ErrNotEmpty
	}
	b.handle.Delete(ctx, b.store)
	return nil
}
