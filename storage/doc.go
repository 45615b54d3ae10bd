// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the keyed object store
//
// Every stored entry is addressed by the pair (owner id, field key);
// the owner id is the object id of the collection or object holding
// the entry. The core only ever addresses single entries by exact
// key, it never enumerates the store.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. owner        = object id as 32 byte SHA3-256
//
// Entries:
//
//   E ++ owner ++ field key    - one stored entry
//                                data: tag length (big endian uint16) ++ type tag ++ value bytes
//
// Bookkeeping:
//
//   X ++ owner                 - deletion marker written when an object handle
//                                is deleted; only bookkeeping, the id is never reused
//                                data: epoch (big endian uint64, 8 bytes)
package storage
