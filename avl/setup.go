// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotations - number of rebalancing operations performed on a tree
type Rotations struct {
	Single int // one left or right rotation
	Double int // left-right or right-left pair
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *Node
	count     int
	rotations Rotations
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Rotations - return the rebalancing totals since the tree was created
func (tree *Tree) Rotations() Rotations {
	return tree.rotations
}

// Item - read the item from a node
func (p *Node) Item() Item {
	return p.item
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Balance - left sub-tree height minus right sub-tree height
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return p.balance()
}

// Left - return the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child or nil
func (p *Node) Right() *Node {
	return p.right
}
