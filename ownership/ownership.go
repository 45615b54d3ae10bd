// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - who may read and mutate an object
//
// State machine per object:
//
//	Owned(a) → Owned(b)   repeatable, via Transfer
//	Owned(a) → Frozen     terminal, globally readable
//	Owned(a) → Shared     terminal, globally mutable
//
// Records live in the keyed store under the reserved zero owner id,
// which no identifier derivation can ever produce.
package ownership

import (
	"github.com/bitmark-inc/logger"

	"github.com/tallyledger/tallyd/fault"
	"github.com/tallyledger/tallyd/object"
	"github.com/tallyledger/tallyd/objectid"
	"github.com/tallyledger/tallyd/storage"
	"github.com/tallyledger/tallyd/transaction"
)

// Status - ownership state of one object
type Status byte

// possible status values
const (
	StatusOwned Status = iota + 1
	StatusFrozen
	StatusShared
)

// String - status name for logs
func (s Status) String() string {
	switch s {
	case StatusOwned:
		return "owned"
	case StatusFrozen:
		return "frozen"
	case StatusShared:
		return "shared"
	default:
		return "invalid"
	}
}

// SharePolicy - which objects Share accepts
type SharePolicy int

// share policies
const (
	// ShareNewOnly - only objects created by the sharing transaction
	ShareNewOnly SharePolicy = iota
	// ShareAnyOwned - any currently owned object
	ShareAnyOwned
)

// ParsePolicy - share policy from its configuration name
func ParsePolicy(name string) (SharePolicy, error) {
	switch name {
	case "", "new-only":
		return ShareNewOnly, nil
	case "any-owned":
		return ShareAnyOwned, nil
	default:
		return ShareNewOnly, fault.InvalidError("share policy: " + name)
	}
}

// record type tag in the store
const recordType = "ownership.Record"

// Registry - ownership records over a keyed store
type Registry struct {
	store  storage.Store
	policy SharePolicy
	log    *logger.L
}

// NewRegistry - create a registry on store with the given share policy
func NewRegistry(store storage.Store, policy SharePolicy) *Registry {
	return &Registry{
		store:  store,
		policy: policy,
		log:    logger.New("ownership"),
	}
}

// Record - current state of one object
type Record struct {
	Status Status
	Owner  transaction.Address // zero unless Status == StatusOwned
}

// status byte ++ owner address
func packRecord(record Record) storage.Entry {
	data := make([]byte, 1, 1+transaction.AddressLength)
	data[0] = byte(record.Status)
	data = append(data, record.Owner[:]...)
	return storage.Entry{
		Type: recordType,
		Data: data,
	}
}

func unpackRecord(entry storage.Entry) Record {
	if recordType != entry.Type || len(entry.Data) != 1+transaction.AddressLength {
		fault.Panicf("ownership: corrupt record: %x", entry.Data)
	}
	record := Record{
		Status: Status(entry.Data[0]),
	}
	copy(record.Owner[:], entry.Data[1:])
	return record
}

// StatusOf - current record for an object
//
// an object with no record was created but never transferred, shared
// or frozen; it is owned by whoever holds its handle
func (r *Registry) StatusOf(id objectid.ObjectId) (Record, bool) {
	entry, found := r.store.Get(objectid.ObjectId{}, id.Bytes())
	if !found {
		return Record{}, false
	}
	return unpackRecord(entry), true
}

// Transfer - move an owned object to a new owner
//
// repeatable; rejected once the object is frozen or shared
func (r *Registry) Transfer(h *object.Handle, newOwner transaction.Address) error {
	id := h.Id()
	if record, found := r.StatusOf(id); found && StatusOwned != record.Status {
		return fault.ErrNotOwned
	}

	r.put(id, Record{Status: StatusOwned, Owner: newOwner})
	r.log.Debugf("transfer: %s to: %s", id.ShortString(), newOwner)
	return nil
}

// Freeze - make an object globally readable, immutable and
// non-transferable forever
func (r *Registry) Freeze(h *object.Handle) error {
	id := h.Id()
	if record, found := r.StatusOf(id); found && StatusOwned != record.Status {
		return fault.ErrNotOwned
	}

	r.put(id, Record{Status: StatusFrozen})
	r.log.Debugf("freeze: %s", id.ShortString())
	return nil
}

// Share - make an object globally mutable, irreversibly
//
// under ShareNewOnly only an object allocated by ctx itself is
// accepted; an object carried over from a previous transaction is
// rejected with ErrSharedNonNewObject
func (r *Registry) Share(ctx *transaction.Context, h *object.Handle) error {
	id := h.Id()
	if record, found := r.StatusOf(id); found && StatusOwned != record.Status {
		return fault.ErrNotOwned
	}

	if ShareNewOnly == r.policy && !ctx.WasCreatedHere(id) {
		return fault.ErrSharedNonNewObject
	}

	r.put(id, Record{Status: StatusShared})
	r.log.Debugf("share: %s", id.ShortString())
	return nil
}

// CanMutate - true if who may mutate the object in this transaction
//
// unrecorded objects are mutable by the handle holder, so default to
// true for them; cross-transaction serialization of shared objects
// is the embedding runtime's concern
func (r *Registry) CanMutate(id objectid.ObjectId, who transaction.Address) bool {
	record, found := r.StatusOf(id)
	if !found {
		return true
	}
	switch record.Status {
	case StatusOwned:
		return record.Owner == who
	case StatusShared:
		return true
	default:
		return false
	}
}

// CanRead - true if who may read the object
func (r *Registry) CanRead(id objectid.ObjectId, who transaction.Address) bool {
	record, found := r.StatusOf(id)
	if !found {
		return true
	}
	if StatusOwned == record.Status {
		return record.Owner == who
	}
	return true // frozen and shared are globally readable
}

func (r *Registry) put(id objectid.ObjectId, record Record) {
	r.store.Put(objectid.ObjectId{}, id.Bytes(), packRecord(record))
}
