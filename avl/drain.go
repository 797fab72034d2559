// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Drain - remove every item from the tree and return them in
// ascending order
//
// the nodes are dismantled as they are visited so the tree is empty
// afterwards; a second Drain returns an empty slice
func (tree *Tree) Drain() []Item {
	items := make([]Item, 0, tree.count)
	stack := make([]*Node, 0, height(tree.root))

	p := tree.root
	tree.root = nil
	tree.count = 0

	for nil != p || len(stack) > 0 {
		for nil != p {
			left := p.left
			p.left = nil
			stack = append(stack, p)
			p = left
		}

		n := len(stack) - 1
		q := stack[n]
		stack[n] = nil
		stack = stack[:n]

		items = append(items, q.item)

		// detach before moving on so nothing is visited twice
		p = q.right
		q.right = nil
		q.item = nil
	}
	return items
}
