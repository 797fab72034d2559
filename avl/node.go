// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item

// Item - an item must implement the Compare function
//
// Compare returns -1, 0, +1 when the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	item   Item  // the stored item, also the ordering key
	height int   // height of the sub-tree rooted here, leaf = 1
}

// create a new leaf node
func newNode(item Item) *Node {
	return &Node{
		item:   item,
		height: 1,
	}
}

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
//
// the children must already be in their final position
func (p *Node) update() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// left height minus right height
func (p *Node) balance() int {
	return height(p.left) - height(p.right)
}
