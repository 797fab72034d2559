// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns false if the item was not present
func (tree *Tree) Delete(item Item) bool {
	removed := tree.delete(item, &tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree) delete(item Item, pp **Node) bool {
	p := *pp
	if nil == p { // item not in tree
		return false
	}

	removed := false
	switch c := p.item.Compare(item); {
	case c > 0: // p.item > item
		removed = tree.delete(item, &p.left)
	case c < 0: // p.item < item
		removed = tree.delete(item, &p.right)
	default: // found: delete p
		if nil == p.left {
			*pp = p.right
		} else if nil == p.right {
			*pp = p.left
		} else {
			// the successor node takes the place of p
			s := tree.detachFirst(&p.right)
			s.left = p.left
			s.right = p.right
			*pp = s
		}
		p.left = nil
		p.right = nil
		removed = true
	}
	if !removed {
		return false
	}

	if nil != *pp {
		(*pp).update()
		tree.balanceDelete(pp)
	}
	return true
}

// delete: unlink the lowest node of a non-empty sub-tree
func (tree *Tree) detachFirst(pp **Node) *Node {
	p := *pp
	if nil == p.left {
		*pp = p.right
		p.right = nil
		return p
	}

	first := tree.detachFirst(&p.left)
	p.update()
	tree.balanceDelete(pp)
	return first
}

// delete: tree balancer
//
// no item to steer by, so the heavy child's own balance decides; a
// level child takes the single rotation
func (tree *Tree) balanceDelete(pp **Node) {
	p := *pp
	switch b := p.balance(); {
	case b >= 2:
		if p.left.balance() <= -1 {
			// double LR rotation
			rotateLeft(&p.left)
			rotateRight(pp)
			tree.rotations.Double += 1
		} else {
			// single LL rotation
			rotateRight(pp)
			tree.rotations.Single += 1
		}
	case b <= -2:
		if p.right.balance() >= 1 {
			// double RL rotation
			rotateRight(&p.right)
			rotateLeft(pp)
			tree.rotations.Double += 1
		} else {
			// single RR rotation
			rotateLeft(pp)
			tree.rotations.Single += 1
		}
	}
}
