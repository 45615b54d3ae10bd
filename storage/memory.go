// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/tallyledger/tallyd/objectid"
)

// MemoryStore - map-backed store with the same semantics as PoolStore
//
// used by tests and by embeddings that do not need durability
type MemoryStore struct {
	sync.RWMutex
	entries map[string]Entry
	deleted map[objectid.ObjectId]uint64
}

// NewMemory - create an empty in-memory store
func NewMemory() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		deleted: make(map[objectid.ObjectId]uint64),
	}
}

// owner is fixed width so plain concatenation cannot be ambiguous
func memoryKey(owner objectid.ObjectId, key []byte) string {
	return string(owner[:]) + string(key)
}

// Put - store an entry under (owner, key)
func (m *MemoryStore) Put(owner objectid.ObjectId, key []byte, entry Entry) {
	m.Lock()
	defer m.Unlock()

	data := make([]byte, len(entry.Data))
	copy(data, entry.Data)
	m.entries[memoryKey(owner, key)] = Entry{
		Type: entry.Type,
		Data: data,
	}
}

// Get - fetch the entry under (owner, key)
func (m *MemoryStore) Get(owner objectid.ObjectId, key []byte) (Entry, bool) {
	m.RLock()
	defer m.RUnlock()

	entry, found := m.entries[memoryKey(owner, key)]
	return entry, found
}

// Remove - delete and return the entry under (owner, key)
func (m *MemoryStore) Remove(owner objectid.ObjectId, key []byte) (Entry, bool) {
	m.Lock()
	defer m.Unlock()

	k := memoryKey(owner, key)
	entry, found := m.entries[k]
	if !found {
		return Entry{}, false
	}
	delete(m.entries, k)
	return entry, true
}

// Has - true if an entry of the given type is stored under (owner, key)
func (m *MemoryStore) Has(owner objectid.ObjectId, key []byte, typeTag string) bool {
	m.RLock()
	defer m.RUnlock()

	entry, found := m.entries[memoryKey(owner, key)]
	if !found {
		return false
	}
	return "" == typeTag || entry.Type == typeTag
}

// DeleteOwner - record that the owner's handle was deleted
func (m *MemoryStore) DeleteOwner(owner objectid.ObjectId, epoch uint64) {
	m.Lock()
	defer m.Unlock()

	m.deleted[owner] = epoch
}

// WasDeleted - true if a deletion marker exists for owner
func (m *MemoryStore) WasDeleted(owner objectid.ObjectId) bool {
	m.RLock()
	defer m.RUnlock()

	_, found := m.deleted[owner]
	return found
}

// EntryCount - number of live entries, all owners combined
func (m *MemoryStore) EntryCount() int {
	m.RLock()
	defer m.RUnlock()

	return len(m.entries)
}
