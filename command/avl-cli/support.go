// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// build a tree from the command arguments
func treeFromArguments(c *cli.Context) (*avl.Tree, error) {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return nil, fault.ErrMissingArguments
	}

	tree := avl.New()
	for _, s := range c.Args() {
		n, err := strconv.Atoi(s)
		if nil != err {
			return nil, err
		}
		added := tree.Insert(avl.IntItem(n))
		if m.verbose && !added {
			fmt.Fprintf(m.e, "duplicate ignored: %d\n", n)
		}
	}

	if m.verbose {
		r := tree.Rotations()
		fmt.Fprintf(m.e, "items: %d  rotations: single: %d  double: %d\n", tree.Count(), r.Single, r.Double)
	}
	return tree, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
