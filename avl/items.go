// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// IntItem - an integer usable as a tree item
type IntItem int

// Compare - integer comparison for the Item interface
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (i IntItem) String() string {
	return strconv.Itoa(int(i))
}

// StringItem - a string usable as a tree item, byte-wise ordering
type StringItem string

// Compare - string comparison for the Item interface
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}

// String - the string itself
func (s StringItem) String() string {
	return string(s)
}
