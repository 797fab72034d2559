// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights, balance and item count
func (tree *Tree) Check() error {
	count, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if count != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, low and high are the exclusive bounds
// inherited from the ancestors (nil is unbounded)
// returns the node count and the recomputed height
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && low.Compare(p.item) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && high.Compare(p.item) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}

	lc, lh, err := check(p.left, low, p.item)
	if nil != err {
		return 0, 0, err
	}
	rc, rh, err := check(p.right, p.item, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return 1 + lc + rc, h, nil
}
