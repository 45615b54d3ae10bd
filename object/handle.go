// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package object - the unit of storage ownership
//
// A Handle pairs a unique object id with the obligation to destroy
// it exactly once. Handles are only created from a transaction
// context and only destroyed through Delete; any other lifecycle is
// a linear-resource violation and aborts the process, since it would
// silently duplicate or leak a storage address.
package object

import (
	"github.com/tallyledger/tallyd/event"
	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/objectid"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// EventObjectDeleted - event kind emitted on every handle deletion
const EventObjectDeleted = "object.deleted"

// ObjectDeleted - payload for off-system indexers
type ObjectDeleted struct {
	Id    objectid.ObjectId `json:"id"`
	Epoch uint64            `json:"epoch"`
}

// Handle - non-duplicable carrier of an object id
//
// must not be copied by value once created; pass the pointer
type Handle struct {
	id       objectid.ObjectId
	consumed bool
}

// New - allocate a fresh handle
//
// side effect: increments the context's issuance counter
func New(ctx *transaction.Context) *Handle {
	return &Handle{
		id: ctx.NewId(),
	}
}

// Id - the identifier carried by this handle
func (h *Handle) Id() objectid.ObjectId {
	if h.id.IsZero() {
		fault.Panicf("object: use of an unallocated handle")
	}
	return h.id
}

// IsConsumed - true once the handle was deleted
func (h *Handle) IsConsumed() bool {
	return h.consumed
}

// Delete - consume the handle and signal removal to the store
//
// the id is never reused; the store marker is bookkeeping only.
// Deleting twice is a linear-resource violation.
func (h *Handle) Delete(ctx *transaction.Context, store storage.Store) {
	if h.id.IsZero() {
		fault.Panicf("object: delete of an unallocated handle")
	}
	if h.consumed {
		fault.Panicf("object: handle %s deleted twice", h.id.ShortString())
	}
	h.consumed = true
	store.DeleteOwner(h.id, ctx.Epoch())
	event.Send(EventObjectDeleted, ObjectDeleted{
		Id:    h.id,
		Epoch: ctx.Epoch(),
	})
}
