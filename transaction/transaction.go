// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - per-transaction execution context
//
// The embedding runtime creates one Context per transaction and
// threads it through every operation that allocates object ids. The
// context carries the sender address, the epoch number, the
// transaction digest and the issuance counter that makes each
// allocated id unique.
package transaction

import (
	"github.com/tallyledger/tallyd/counter"
	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/objectid"
)

// Context - opaque per-transaction state supplied by the embedding runtime
type Context struct {
	sender  Address
	epoch   uint64
	digest  [objectid.DigestLength]byte
	issued  counter.Counter
	created map[objectid.ObjectId]struct{}
}

// NewContext - create a context for one transaction
//
// the digest must be exactly objectid.DigestLength bytes; any other
// width indicates a malformed context and is rejected outright
func NewContext(sender Address, epoch uint64, digest []byte) (*Context, error) {
	if objectid.DigestLength != len(digest) {
		return nil, fault.ErrInvalidDigestLength
	}
	ctx := &Context{
		sender:  sender,
		epoch:   epoch,
		created: make(map[objectid.ObjectId]struct{}),
	}
	copy(ctx.digest[:], digest)
	return ctx, nil
}

// Sender - address that signed the transaction
func (ctx *Context) Sender() Address {
	return ctx.sender
}

// Epoch - epoch number the transaction executes in
func (ctx *Context) Epoch() uint64 {
	return ctx.epoch
}

// Digest - copy of the transaction digest
func (ctx *Context) Digest() []byte {
	digest := make([]byte, objectid.DigestLength)
	copy(digest, ctx.digest[:])
	return digest
}

// NewId - allocate the next object id for this transaction
//
// increments the issuance counter as an observable side effect; ids
// from one context never repeat and never collide with ids from a
// context carrying a different digest
func (ctx *Context) NewId() objectid.ObjectId {
	count := ctx.issued.NextValue()
	id, err := objectid.Derive(ctx.digest[:], count)
	if nil != err {
		// digest width was checked at construction
		fault.Panicf("transaction.NewId: %v", err)
	}
	ctx.created[id] = struct{}{}
	return id
}

// IssuedCount - number of ids allocated so far
func (ctx *Context) IssuedCount() uint64 {
	return ctx.issued.Uint64()
}

// WasCreatedHere - true if id was allocated by this context
//
// used by the share-object policy to detect objects carried over
// from a previous transaction
func (ctx *Context) WasCreatedHere(id objectid.ObjectId) bool {
	_, ok := ctx.created[id]
	return ok
}
