// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// rotate the sub-tree in a slot to the left
//
//	  x                y
//	 / \              / \
//	a   y     →      x   c
//	   / \          / \
//	  b   c        a   b
//
// x is lowered so its height is recomputed first
func rotateLeft(pp **Node) {
	x := *pp
	if nil == x {
		fault.Panicf("rotate left: sub-tree is empty")
	}
	y := x.right
	if nil == y {
		fault.Panicf("rotate left: item: %v has no right child", x.item)
	}

	x.right = y.left
	x.update()

	y.left = x
	y.update()

	*pp = y
}

// rotate the sub-tree in a slot to the right
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
//
// y is lowered so its height is recomputed first
func rotateRight(pp **Node) {
	y := *pp
	if nil == y {
		fault.Panicf("rotate right: sub-tree is empty")
	}
	x := y.left
	if nil == x {
		fault.Panicf("rotate right: item: %v has no left child", y.item)
	}

	y.left = x.right
	y.update()

	x.right = y
	x.update()

	*pp = x
}
