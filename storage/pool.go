// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/objectid"
)

// pool prefixes
const (
	entryPrefix   = 'E'
	deletedPrefix = 'X'
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// PoolStore - leveldb-backed keyed object store
//
// writes accumulate in a batch; Commit makes them durable in one
// leveldb write, Abort discards them, so a failed transaction leaves
// no partial mutation on disk
type PoolStore struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	log   *logger.L
}

// New - open the store database
func New(database string) (*PoolStore, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		return nil, fmt.Errorf("store database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	return &PoolStore{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
		log:   logger.New("storage"),
	}, nil
}

// Close - close the database connection
func (p *PoolStore) Close() error {
	return p.db.Close()
}

// Begin - start accumulating one transaction's writes
func (p *PoolStore) Begin() error {
	p.Lock()
	defer p.Unlock()

	if p.inUse {
		return fmt.Errorf("batch already in use")
	}
	p.inUse = true
	return nil
}

// Commit - make the accumulated writes durable in one leveldb write
func (p *PoolStore) Commit() error {
	p.Lock()
	defer p.Unlock()

	err := p.db.Write(p.batch, nil)
	p.batch.Reset()
	p.inUse = false
	return err
}

// Abort - discard the accumulated writes
func (p *PoolStore) Abort() {
	p.Lock()
	defer p.Unlock()

	p.batch.Reset()
	p.cache.Clear()
	p.inUse = false
}

// prefix ++ owner ++ field key
func entryKey(owner objectid.ObjectId, key []byte) []byte {
	prefixedKey := make([]byte, 1, 1+objectid.Length+len(key))
	prefixedKey[0] = entryPrefix
	prefixedKey = append(prefixedKey, owner[:]...)
	return append(prefixedKey, key...)
}

func deletedKey(owner objectid.ObjectId) []byte {
	prefixedKey := make([]byte, 1, 1+objectid.Length)
	prefixedKey[0] = deletedPrefix
	return append(prefixedKey, owner[:]...)
}

// Put - store an entry under (owner, key)
func (p *PoolStore) Put(owner objectid.ObjectId, key []byte, entry Entry) {
	dbKey := entryKey(owner, key)
	packed := packEntry(entry)
	p.cache.Set(dbPut, string(dbKey), packed)
	p.batch.Put(dbKey, packed)
}

// Get - fetch the entry under (owner, key)
func (p *PoolStore) Get(owner objectid.ObjectId, key []byte) (Entry, bool) {
	dbKey := entryKey(owner, key)

	if packed, found := p.cache.Get(string(dbKey)); found {
		return unpackEntry(packed), true
	}
	if present, known := p.cache.Has(string(dbKey)); known && !present {
		return Entry{}, false
	}

	packed, err := p.db.Get(dbKey, nil)
	if leveldb.ErrNotFound == err {
		return Entry{}, false
	}
	fault.PanicIfError("storage.Get", err)

	p.cache.Set(dbPut, string(dbKey), packed)
	return unpackEntry(packed), true
}

// Remove - delete and return the entry under (owner, key)
func (p *PoolStore) Remove(owner objectid.ObjectId, key []byte) (Entry, bool) {
	entry, found := p.Get(owner, key)
	if !found {
		return Entry{}, false
	}

	dbKey := entryKey(owner, key)
	p.cache.Set(dbDelete, string(dbKey), []byte{})
	p.batch.Delete(dbKey)
	return entry, true
}

// Has - true if an entry of the given type is stored under (owner, key)
func (p *PoolStore) Has(owner objectid.ObjectId, key []byte, typeTag string) bool {
	entry, found := p.Get(owner, key)
	if !found {
		return false
	}
	return "" == typeTag || entry.Type == typeTag
}

// DeleteOwner - record that the owner's handle was deleted
func (p *PoolStore) DeleteOwner(owner objectid.ObjectId, epoch uint64) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, epoch)
	dbKey := deletedKey(owner)
	p.batch.Put(dbKey, data)
	p.log.Debugf("delete owner: %s epoch: %d", owner.ShortString(), epoch)
}

// WasDeleted - true if a deletion marker exists for owner
func (p *PoolStore) WasDeleted(owner objectid.ObjectId) bool {
	found, err := p.db.Has(deletedKey(owner), nil)
	fault.PanicIfError("storage.WasDeleted", err)
	return found
}

// return: version number
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return db.Put(versionKey, currentVersion, nil)
}
