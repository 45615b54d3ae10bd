// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Tally Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyledger/tallyd/configuration"
)

type testConfig struct {
	DataDirectory string   `gluamapper:"data_directory"`
	SharePolicy   string   `gluamapper:"share_policy"`
	Names         []string `gluamapper:"names"`
	Nested        struct {
		Count int `gluamapper:"count"`
	} `gluamapper:"nested"`
}

const sampleScript = `
local M = {}

M.data_directory = "."
M.share_policy = "any-owned"
M.names = { "one", "two" }
M.nested = { count = 3 }

-- conditional override keyed on the script's own location
if arg[0] == "/nonexistent.lua" then
    M.share_policy = "never"
end

return M
`

func writeScript(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "tallyd.conf")
	err := os.WriteFile(name, []byte(text), 0o600)
	assert.NoError(t, err, "write script")
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	name := writeScript(t, sampleScript)

	config := &testConfig{}
	err := configuration.ParseConfigurationFile(name, config)
	assert.NoError(t, err, "parse")

	assert.Equal(t, ".", config.DataDirectory, "data_directory")
	assert.Equal(t, "any-owned", config.SharePolicy, "share_policy untouched by arg branch")
	assert.Equal(t, []string{"one", "two"}, config.Names, "names")
	assert.Equal(t, 3, config.Nested.Count, "nested count")
}

func TestParseConfigurationFileDefaultsSurvive(t *testing.T) {
	name := writeScript(t, `return { share_policy = "new-only" }`)

	config := &testConfig{DataDirectory: "/var/lib/tallyd"}
	err := configuration.ParseConfigurationFile(name, config)
	assert.NoError(t, err, "parse")

	// fields the script does not mention keep their defaults
	assert.Equal(t, "/var/lib/tallyd", config.DataDirectory, "default kept")
	assert.Equal(t, "new-only", config.SharePolicy, "assigned")
}

func TestParseConfigurationFileScriptError(t *testing.T) {
	name := writeScript(t, `this is not lua`)

	err := configuration.ParseConfigurationFile(name, &testConfig{})
	assert.Error(t, err, "syntax error surfaces")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	err := configuration.ParseConfigurationFile("/nonexistent/tallyd.conf", &testConfig{})
	assert.Error(t, err, "missing file")
}
