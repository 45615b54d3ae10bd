// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every abort a ledger operation can raise is one of these
// instances; a failing operation makes no partial state change and
// the embedding runtime discards the whole transaction.
package fault
