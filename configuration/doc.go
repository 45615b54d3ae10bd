// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua scripted configuration files
//
// A configuration file is a Lua script whose final expression is a
// table; the table is mapped onto a Go structure using gluamapper
// field tags. Scripting keeps machine-local conditionals out of the
// Go code.
package configuration
