// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - fire-and-forget event queue for off-system indexers
//
// Events are ordered by emission call order within a transaction and
// are never retried; when no consumer drains the queue, the oldest
// unsent events are simply lost once the buffer fills.
package event

import (
	"github.com/tallyledger/tallyd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Event - one emitted record
type Event struct {
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

var (
	// for queueing data
	queue = make(chan Event, queueSize)

	// emitted and dropped totals
	sent    counter.Counter
	dropped counter.Counter
)

// Send - queue an event; never blocks, never retries
func Send(kind string, payload interface{}) {
	e := Event{
		Kind:    kind,
		Payload: payload,
	}
	select {
	case queue <- e:
		sent.Increment()
	default:
		dropped.Increment()
	}
}

// Chan - channel to read from
func Chan() <-chan Event {
	return queue
}

// SentCount - events queued so far
func SentCount() uint64 {
	return sent.Uint64()
}

// DroppedCount - events lost to a full queue
func DroppedCount() uint64 {
	return dropped.Uint64()
}
