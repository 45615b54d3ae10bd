// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read-through cache over the database
//
// also carries the writes of the batch in progress so reads within a
// transaction observe their own uncommitted mutations
type Cache interface {
	Get(string) ([]byte, bool)
	Has(string) (present bool, known bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return []byte{}, false
	}

	data := obj.(cacheData)
	// a deleted key reads as not found
	if dbDelete == data.op {
		return []byte{}, false
	}

	return data.value, true
}

// Has - separate from Get because a cached delete marker is an
// authoritative "absent" that must not fall through to the database
func (c *dbCache) Has(key string) (present bool, known bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return false, false
	}
	data := obj.(cacheData)
	return dbPut == data.op, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
