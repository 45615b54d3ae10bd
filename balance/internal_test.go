// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"testing"

	"github.com/tallyledger/tallyd/fault"
)

type markerDefensive struct{}

// a balance larger than the supply cannot arise through the public
// paths; the decrease guard must still reject it
func TestDecreaseDefensiveCheck(t *testing.T) {
	s := &Supply[markerDefensive]{value: 10}
	oversized := &Balance[markerDefensive]{value: 11}

	_, err := s.Decrease(oversized)
	if fault.ErrOverflow != err {
		t.Fatalf("expected overflow fault, got: %v", err)
	}
	if 10 != s.Value() {
		t.Fatalf("supply changed on failed burn: %d", s.Value())
	}
	if 11 != oversized.Value() {
		t.Fatalf("balance consumed on failed burn: %d", oversized.Value())
	}
}

// join guard against wrapped counters
func TestJoinOverflowGuard(t *testing.T) {
	a := &Balance[markerDefensive]{value: ^uint64(0)}
	b := &Balance[markerDefensive]{value: 1}

	_, err := a.Join(b)
	if fault.ErrOverflow != err {
		t.Fatalf("expected overflow fault, got: %v", err)
	}
	if 1 != b.Value() {
		t.Fatalf("source consumed on failed join: %d", b.Value())
	}
}
