// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test scaffolding
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/tallyledger/tallyd/transaction"
)

// LogCategory - tag used by the test logger
const LogCategory = "testing"

var dir = filepath.Join(os.TempDir(), "tallyd-test-log")

// SetupTestLogger - initialise the logger for packages whose code logs
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// Sender - a fixed test account address
func Sender() transaction.Address {
	return transaction.Address{0xa1, 0xb2, 0xc3}
}

// Context - a transaction context with a digest derived from seed
//
// distinct seeds simulate distinct transactions
func Context(seed string) *transaction.Context {
	digest := sha3.Sum256([]byte(seed))
	ctx, err := transaction.NewContext(Sender(), 1, digest[:])
	if nil != err {
		panic("fixtures: context: " + err.Error())
	}
	return ctx
}
