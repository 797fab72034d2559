// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest item
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest item
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Min - the lowest item, false only for an empty tree
func (tree *Tree) Min() (Item, bool) {
	p := tree.root.first()
	if nil == p {
		return nil, false
	}
	return p.item, true
}

// Max - the highest item, false only for an empty tree
func (tree *Tree) Max() (Item, bool) {
	p := tree.root.last()
	if nil == p {
		return nil, false
	}
	return p.item, true
}

// Walk - call f for each item in ascending order until f returns false
//
// the tree is not modified and must not be modified by f
func (tree *Tree) Walk(f func(item Item) bool) {
	stack := make([]*Node, 0, height(tree.root))
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		n := len(stack) - 1
		p, stack = stack[n], stack[:n]
		if !f(p.item) {
			return
		}
		p = p.right
	}
}

// Items - all items in ascending order, the tree is unchanged
func (tree *Tree) Items() []Item {
	items := make([]Item, 0, tree.count)
	tree.Walk(func(item Item) bool {
		items = append(items, item)
		return true
	})
	return items
}
