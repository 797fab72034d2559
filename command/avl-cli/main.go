// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "load integers into an AVL tree and show the result"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "print the items in ascending order",
			ArgsUsage: "INTEGER...",
			Action:    runSort,
		},
		{
			Name:      "render",
			Usage:     "print the tree level by level",
			ArgsUsage: "INTEGER...",
			Action:    runRender,
		},
		{
			Name:      "print",
			Usage:     "print the tree on its side with node heights",
			ArgsUsage: "INTEGER...",
			Action:    runPrint,
		},
		{
			Name:      "check",
			Usage:     "insert, remove and verify the tree",
			ArgsUsage: "INTEGER...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "remove, r",
					Usage: " remove `INTEGER` after inserting, may be repeated",
				},
			},
			Action: runCheck,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
