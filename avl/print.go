// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Render - lay the tree out level by level with each item centred
// over its children
//
// the bottom level uses one field per item, each level above doubles
// the field width; an empty tree renders as an empty line
func (tree *Tree) Render() string {
	if nil == tree.root {
		return "\n"
	}

	width := 0
	tree.Walk(func(item Item) bool {
		if n := utf8.RuneCountInString(fmt.Sprint(item)); n > width {
			width = n
		}
		return true
	})
	field := width + 1 // one space between neighbours

	h := tree.root.height
	b := strings.Builder{}
	level := []*Node{tree.root}
	for depth := 0; depth < h; depth += 1 {
		slot := field << uint(h-1-depth)
		line := strings.Builder{}
		next := make([]*Node, 0, 2*len(level))
		for _, p := range level {
			if nil == p {
				line.WriteString(strings.Repeat(" ", slot))
				next = append(next, nil, nil)
				continue
			}
			s := fmt.Sprint(p.item)
			n := utf8.RuneCountInString(s)
			pad := (slot - n) / 2
			line.WriteString(strings.Repeat(" ", pad))
			line.WriteString(s)
			line.WriteString(strings.Repeat(" ", slot-pad-n))
			next = append(next, p.left, p.right)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
		level = next
	}
	return b.String()
}

// Print - display an ASCII graphic representation of the tree on its
// side, right branches above left
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, showHeight bool) int {
	return printTree(w, tree.root, "", root, showHeight)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, showHeight bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, showHeight)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if showHeight {
		fmt.Fprintf(w, "%v h:%d %+2d\n", tree.item, tree.height, tree.balance())
	} else {
		fmt.Fprintf(w, "%v\n", tree.item)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, showHeight)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
