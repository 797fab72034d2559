// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type number int

func (n number) Compare(x interface{}) int {
	m := x.(number)
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	default:
		return 0
	}
}

func chain(items ...number) *Node {
	var top *Node
	for i := len(items) - 1; i >= 0; i -= 1 {
		p := newNode(items[i])
		p.left = top
		p.update()
		top = p
	}
	return top
}

func TestRotateLeft(t *testing.T) {
	x := newNode(number(2))
	x.left = newNode(number(1))
	x.right = newNode(number(4))
	x.right.left = newNode(number(3))
	x.right.right = newNode(number(5))
	x.right.update()
	x.update()

	p := x
	rotateLeft(&p)

	assert.Equal(t, number(4), p.item, "new top")
	assert.Equal(t, number(2), p.left.item, "lowered node")
	assert.Equal(t, number(3), p.left.right.item, "moved sub-tree")
	assert.Equal(t, 2, p.left.height, "lowered height")
	assert.Equal(t, 3, p.height, "new top height")

	_, _, err := check(p, nil, nil)
	assert.Nil(t, err, "check")
}

func TestRotateRight(t *testing.T) {
	p := chain(3, 2, 1)
	assert.Equal(t, 3, p.height, "chain height")

	rotateRight(&p)

	assert.Equal(t, number(2), p.item, "new top")
	assert.Equal(t, number(1), p.left.item, "left")
	assert.Equal(t, number(3), p.right.item, "right")
	assert.Equal(t, 2, p.height, "new top height")
	assert.Equal(t, 1, p.right.height, "lowered height")
}

func TestRotatePreconditions(t *testing.T) {
	var empty *Node
	assert.Panics(t, func() { rotateLeft(&empty) }, "rotate left empty")
	assert.Panics(t, func() { rotateRight(&empty) }, "rotate right empty")

	leaf := newNode(number(1))
	assert.Panics(t, func() { rotateLeft(&leaf) }, "rotate left without right child")
	assert.Panics(t, func() { rotateRight(&leaf) }, "rotate right without left child")
}

// an equal item reaching the insert balancer means the duplicate
// check was bypassed
func TestBalanceInsertEqualIsFatal(t *testing.T) {
	tree := New()
	tree.root = chain(3, 2, 1)
	tree.count = 3

	assert.Panics(t, func() {
		tree.balanceInsert(number(2), &tree.root)
	}, "equal to left child")
}
