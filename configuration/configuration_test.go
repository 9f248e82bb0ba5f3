// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullspace/shipd/configuration"
)

const configurationScript = `
local M = {}

M.data_directory = arg[0]:match("^(.*/)") or "."

M.admin = "test-admin-key"

M.database = {
    directory = "ledger",
    name = "test.leveldb",
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "shipd.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(configurationScript), 0600))

	options, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, "test-admin-key", options.Admin, "wrong admin")

	// relative paths must be anchored to the data directory
	assert.True(t, filepath.IsAbs(options.Database.Directory), "database directory not absolute")
	assert.Equal(t, filepath.Join(dir, "ledger", "test.leveldb"), options.DatabasePath(), "wrong database path")

	assert.Equal(t, 4096, options.Logging.Size, "wrong log size")
	assert.Equal(t, 3, options.Logging.Count, "wrong log count")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")

	// unset fields keep their defaults
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory default")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/nonexistent/shipd.conf")
	assert.Error(t, err, "missing file accepted")
}
