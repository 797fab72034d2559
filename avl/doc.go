// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of ordered items
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Each node caches the height of its sub-tree and the balance is
// restored after every insert or delete by recomputing the heights
// on the path back to the root and rotating where the heights of two
// sibling sub-trees differ by more than one.
//
// The items are their own keys, inserting an item that is already
// present leaves the tree unchanged.  Nodes do not carry parent
// pointers, so every node is owned by exactly one slot: either the
// root of the tree or the left/right link of another node.
package avl
