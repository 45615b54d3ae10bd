// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyledger/tallyd/fixtures"
	"github.com/tallyledger/tallyd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func openPool(t *testing.T) *storage.PoolStore {
	t.Helper()
	pool, err := storage.New(filepath.Join(t.TempDir(), "store.leveldb"))
	if nil != err {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestPoolPutGetCommit(t *testing.T) {
	pool := openPool(t)
	owner := testOwner(t, "pool-put-get")

	assert.NoError(t, pool.Begin(), "begin")

	entry := storage.Entry{Type: "uint64", Data: []byte{0x2a}}
	pool.Put(owner, []byte("field"), entry)

	// a transaction observes its own uncommitted writes
	back, found := pool.Get(owner, []byte("field"))
	assert.True(t, found, "uncommitted read")
	assert.Equal(t, entry, back, "uncommitted value")

	assert.NoError(t, pool.Commit(), "commit")

	back, found = pool.Get(owner, []byte("field"))
	assert.True(t, found, "committed read")
	assert.Equal(t, entry, back, "committed value")
}

func TestPoolAbortDiscards(t *testing.T) {
	pool := openPool(t)
	owner := testOwner(t, "pool-abort")

	assert.NoError(t, pool.Begin(), "begin")
	pool.Put(owner, []byte("field"), storage.Entry{Type: "uint64", Data: []byte{1}})
	pool.Abort()

	_, found := pool.Get(owner, []byte("field"))
	assert.False(t, found, "aborted write must not be visible")
}

func TestPoolRemove(t *testing.T) {
	pool := openPool(t)
	owner := testOwner(t, "pool-remove")

	assert.NoError(t, pool.Begin(), "begin")
	entry := storage.Entry{Type: "string", Data: []byte("v")}
	pool.Put(owner, []byte("k"), entry)
	assert.NoError(t, pool.Commit(), "commit")

	assert.NoError(t, pool.Begin(), "begin")
	back, found := pool.Remove(owner, []byte("k"))
	assert.True(t, found, "removed entry returned")
	assert.Equal(t, entry, back, "removed value")

	// the delete is visible before commit
	_, found = pool.Get(owner, []byte("k"))
	assert.False(t, found, "uncommitted delete visible")
	assert.False(t, pool.Has(owner, []byte("k"), ""), "has after delete")

	assert.NoError(t, pool.Commit(), "commit")
	_, found = pool.Get(owner, []byte("k"))
	assert.False(t, found, "committed delete")
}

func TestPoolHasTypeTag(t *testing.T) {
	pool := openPool(t)
	owner := testOwner(t, "pool-has")

	assert.NoError(t, pool.Begin(), "begin")
	pool.Put(owner, []byte("k"), storage.Entry{Type: "uint64", Data: []byte{0}})
	assert.NoError(t, pool.Commit(), "commit")

	assert.True(t, pool.Has(owner, []byte("k"), "uint64"), "matching tag")
	assert.False(t, pool.Has(owner, []byte("k"), "string"), "wrong tag")
}

func TestPoolBeginWhileInUse(t *testing.T) {
	pool := openPool(t)

	assert.NoError(t, pool.Begin(), "begin")
	assert.Error(t, pool.Begin(), "second begin must fail")
	pool.Abort()
	assert.NoError(t, pool.Begin(), "begin after abort")
	assert.NoError(t, pool.Commit(), "empty commit")
}

func TestPoolDeleteOwner(t *testing.T) {
	pool := openPool(t)
	owner := testOwner(t, "pool-delete-owner")

	assert.NoError(t, pool.Begin(), "begin")
	pool.DeleteOwner(owner, 9)
	assert.NoError(t, pool.Commit(), "commit")

	assert.True(t, pool.WasDeleted(owner), "deletion marker recorded")
}

func TestPoolReopen(t *testing.T) {
	database := filepath.Join(t.TempDir(), "persist.leveldb")

	pool, err := storage.New(database)
	assert.NoError(t, err, "open")
	owner := testOwner(t, "pool-reopen")

	assert.NoError(t, pool.Begin(), "begin")
	entry := storage.Entry{Type: "uint64", Data: []byte{7}}
	pool.Put(owner, []byte("k"), entry)
	assert.NoError(t, pool.Commit(), "commit")
	assert.NoError(t, pool.Close(), "close")

	pool, err = storage.New(database)
	assert.NoError(t, err, "reopen")
	defer pool.Close()

	back, found := pool.Get(owner, []byte("k"))
	assert.True(t, found, "entry survives reopen")
	assert.Equal(t, entry, back, "value survives reopen")
}
