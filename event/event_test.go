// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyledger/tallyd/event"
)

// emission order must be preserved
func TestSendOrder(t *testing.T) {
	event.Send("one", 1)
	event.Send("two", 2)
	event.Send("three", 3)

	for _, expected := range []string{"one", "two", "three"} {
		select {
		case e := <-event.Chan():
			assert.Equal(t, expected, e.Kind, "event order")
		default:
			t.Fatalf("queue empty, expected: %s", expected)
		}
	}
}

func TestSendNeverBlocks(t *testing.T) {
	before := event.DroppedCount()

	// overfill the queue; Send must return regardless
	for i := 0; i < 2000; i += 1 {
		event.Send("flood", i)
	}

	assert.True(t, event.DroppedCount() > before, "overflow drops, not blocks")

	// drain for later tests
	for {
		select {
		case <-event.Chan():
		default:
			return
		}
	}
}
