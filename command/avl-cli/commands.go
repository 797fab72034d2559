// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := treeFromArguments(c)
	if nil != err {
		return err
	}

	for _, item := range tree.Drain() {
		fmt.Fprintf(m.w, "%v\n", item)
	}
	return nil
}

func runRender(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := treeFromArguments(c)
	if nil != err {
		return err
	}

	fmt.Fprint(m.w, tree.Render())
	return nil
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := treeFromArguments(c)
	if nil != err {
		return err
	}

	depth := tree.Print(m.w, true)
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

type checkResult struct {
	Count   int   `json:"count"`
	Height  int   `json:"height"`
	Min     *int  `json:"min"`
	Max     *int  `json:"max"`
	Removed []int `json:"removed"`
	Missing []int `json:"missing"`
	Single  int   `json:"singleRotations"`
	Double  int   `json:"doubleRotations"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := treeFromArguments(c)
	if nil != err {
		return err
	}

	result := checkResult{
		Removed: []int{},
		Missing: []int{},
	}
	for _, n := range c.IntSlice("remove") {
		if tree.Delete(avl.IntItem(n)) {
			result.Removed = append(result.Removed, n)
		} else {
			result.Missing = append(result.Missing, n)
		}
	}

	if err := tree.Check(); nil != err {
		return err
	}

	result.Count = tree.Count()
	result.Height = tree.Height()
	if item, ok := tree.Min(); ok {
		n := int(item.(avl.IntItem))
		result.Min = &n
	}
	if item, ok := tree.Max(); ok {
		n := int(item.(avl.IntItem))
		result.Max = &n
	}
	r := tree.Rotations()
	result.Single = r.Single
	result.Double = r.Double

	return printJson(m.w, result)
}
