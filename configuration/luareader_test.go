// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type loggingType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	Insert  []int       `gluamapper:"insert"`
	Remove  []int       `gluamapper:"remove"`
	Render  bool        `gluamapper:"render"`
	Logging loggingType `gluamapper:"logging"`
}

const sampleConfiguration = `
local items = {}
for i = 1, 5 do
    items[#items + 1] = i * 10
end

return {
    insert = items,
    remove = { 20, 40 },
    render = true,
    logging = {
        directory = "log",
        file = arg[0]:match("([^/]+)%.conf$") .. ".log",
        levels = {
            DEFAULT = "info",
        },
    },
}
`

func writeFile(t *testing.T, name string, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")

	fileName := filepath.Join(dir, name)
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write file")

	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, "sample.conf", sampleConfiguration)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.Nil(t, err, "parse")

	assert.Equal(t, []int{10, 20, 30, 40, 50}, config.Insert, "insert")
	assert.Equal(t, []int{20, 40}, config.Remove, "remove")
	assert.True(t, config.Render, "render")
	assert.Equal(t, "log", config.Logging.Directory, "log directory")
	assert.Equal(t, "sample.log", config.Logging.File, "log file")
	assert.Equal(t, map[string]string{"DEFAULT": "info"}, config.Logging.Levels, "log levels")
}

func TestParseMissingFile(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("/no/such/file.conf", &config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestParseRequiresStructPointer(t *testing.T) {
	fileName, cleanup := writeFile(t, "any.conf", "return {}")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "int pointer")
}

func TestParseNotATable(t *testing.T) {
	fileName, cleanup := writeFile(t, "bad.conf", "return 42")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrUnexpectedConfigResult, err, "number result")
}

func TestParseLuaError(t *testing.T) {
	fileName, cleanup := writeFile(t, "broken.conf", "return {")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.NotNil(t, err, "syntax error")
}
