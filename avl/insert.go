// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new item into the tree
// returns false if the item was already present
func (tree *Tree) Insert(item Item) bool {
	added := tree.insert(item, &tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func (tree *Tree) insert(item Item, pp **Node) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = newNode(item)
		return true
	}

	added := false
	switch c := p.item.Compare(item); {
	case c > 0: // p.item > item
		added = tree.insert(item, &p.left)
	case c < 0: // p.item < item
		added = tree.insert(item, &p.right)
	default:
		return false
	}
	if !added {
		return false
	}

	p.update()
	tree.balanceInsert(item, pp)
	return true
}

// insert: tree balancer
//
// the side the item went down on the heavy child decides between a
// single and a double rotation
func (tree *Tree) balanceInsert(item Item, pp **Node) {
	p := *pp
	switch b := p.balance(); {
	case b >= 2:
		switch c := p.left.item.Compare(item); {
		case c > 0: // item < left: single LL rotation
			rotateRight(pp)
			tree.rotations.Single += 1
		case c < 0: // item > left: double LR rotation
			rotateLeft(&p.left)
			rotateRight(pp)
			tree.rotations.Double += 1
		default:
			fault.Panicf("insert balance: item: %v equals left child", item)
		}
	case b <= -2:
		switch c := p.right.item.Compare(item); {
		case c < 0: // item > right: single RR rotation
			rotateLeft(pp)
			tree.rotations.Single += 1
		case c > 0: // item < right: double RL rotation
			rotateRight(&p.right)
			rotateLeft(pp)
			tree.rotations.Double += 1
		default:
			fault.Panicf("insert balance: item: %v equals right child", item)
		}
	}
}
