// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// insert, query and remove the configured items, printing the tree
// after each phase and finally the drained sequence
func run(w io.Writer, config *Configuration, log *logger.L) error {

	tree := avl.New()
	for _, n := range config.Insert {
		added := tree.Insert(avl.IntItem(n))
		log.Debugf("insert: %d  added: %t", n, added)
	}
	r := tree.Rotations()
	log.Infof("inserted: %d items  height: %d  rotations: single: %d  double: %d",
		tree.Count(), tree.Height(), r.Single, r.Double)

	fmt.Fprintf(w, "count: %d  height: %d\n", tree.Count(), tree.Height())
	fmt.Fprint(w, tree.Render())

	for _, n := range config.Contains {
		fmt.Fprintf(w, "contains %d: %t\n", n, tree.Contains(avl.IntItem(n)))
	}

	if first, ok := tree.Min(); ok {
		last, _ := tree.Max()
		fmt.Fprintf(w, "min: %v  max: %v\n", first, last)
	}

	if len(config.Remove) > 0 {
		for _, n := range config.Remove {
			removed := tree.Delete(avl.IntItem(n))
			log.Debugf("remove: %d  removed: %t", n, removed)
			fmt.Fprintf(w, "remove %d: %t\n", n, removed)
		}
		fmt.Fprintf(w, "count: %d  height: %d\n", tree.Count(), tree.Height())
		fmt.Fprint(w, tree.Render())
	}

	if err := tree.Check(); nil != err {
		fault.Criticalf("tree check failed: %s", err)
		return err
	}

	fmt.Fprintf(w, "sequence: %v\n", tree.Drain())
	return nil
}
