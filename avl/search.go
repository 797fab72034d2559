// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(item Item) *Node {
	return search(item, tree.root)
}

// Contains - true if the item is in the tree
func (tree *Tree) Contains(item Item) bool {
	return nil != search(item, tree.root)
}

func search(item Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch c := tree.item.Compare(item); {
	case c > 0: // tree.item > item
		return search(item, tree.left)
	case c < 0: // tree.item < item
		return search(item, tree.right)
	default:
		return tree
	}
}
