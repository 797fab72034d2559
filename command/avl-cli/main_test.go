// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func runApp(t *testing.T, arguments ...string) (string, string, error) {
	w := bytes.Buffer{}
	e := bytes.Buffer{}
	app := newApp(&w, &e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestSort(t *testing.T) {
	out, _, err := runApp(t, "sort", "21", "34", "14", "11", "14", "1001")
	require.Nil(t, err, "sort")
	assert.Equal(t, "11\n14\n21\n34\n1001\n", out, "sorted output")
}

func TestSortVerbose(t *testing.T) {
	_, errOut, err := runApp(t, "--verbose", "sort", "1", "2", "3", "2")
	require.Nil(t, err, "sort")
	assert.Contains(t, errOut, "duplicate ignored: 2", "duplicate reported")
	assert.Contains(t, errOut, "items: 3  rotations: single: 1  double: 0", "rotations reported")
}

func TestRender(t *testing.T) {
	out, _, err := runApp(t, "render", "3", "1", "2")
	require.Nil(t, err, "render")
	assert.Equal(t, " 2\n1 3\n", out, "render output")
}

func TestPrint(t *testing.T) {
	out, _, err := runApp(t, "print", "1", "2", "3")
	require.Nil(t, err, "print")
	assert.Contains(t, out, "|------+ 2 h:2 +0\n", "root line")
}

func TestCheck(t *testing.T) {
	out, _, err := runApp(t, "check", "--remove", "3", "--remove", "9", "1", "2", "3", "4")
	require.Nil(t, err, "check")

	result := checkResult{}
	require.Nil(t, json.Unmarshal([]byte(out), &result), "json output")

	assert.Equal(t, 3, result.Count, "count")
	assert.Equal(t, 2, result.Height, "height")
	require.NotNil(t, result.Min, "min")
	require.NotNil(t, result.Max, "max")
	assert.Equal(t, 1, *result.Min, "min")
	assert.Equal(t, 4, *result.Max, "max")
	assert.Equal(t, []int{3}, result.Removed, "removed")
	assert.Equal(t, []int{9}, result.Missing, "missing")
	assert.Equal(t, 1, result.Single, "single rotations")
	assert.Equal(t, 0, result.Double, "double rotations")
}

func TestCheckRemoveAll(t *testing.T) {
	out, _, err := runApp(t, "check", "--remove", "5", "5")
	require.Nil(t, err, "check")

	result := checkResult{}
	require.Nil(t, json.Unmarshal([]byte(out), &result), "json output")
	assert.Equal(t, 0, result.Count, "count")
	assert.Nil(t, result.Min, "no min")
	assert.Nil(t, result.Max, "no max")
}

func TestMissingArguments(t *testing.T) {
	_, _, err := runApp(t, "sort")
	assert.Equal(t, fault.ErrMissingArguments, err, "no items")
}

func TestInvalidArgument(t *testing.T) {
	_, _, err := runApp(t, "render", "12", "twelve")
	assert.NotNil(t, err, "non-integer item")
}
