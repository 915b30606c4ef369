// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cluster shows short-option clusters and the catch-all handler.
//
//	go run ./example/cluster -lah /tmp /var -- -odd-name
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/at2er/libgetarg/pkg/getarg"
	"github.com/at2er/libgetarg/pkg/opt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	var (
		long, all, human bool
		verbose          int
		paths            []string
	)
	table := []getarg.Option{
		opt.Bool("long", 'l', &long, "use a long listing format"),
		opt.Bool("all", 'a', &all, "do not ignore entries starting with ."),
		opt.Bool("human-readable", 'h', &human, "print sizes like 1K 234M 2G"),
		opt.Count("verbose", 'v', &verbose, "print more details"),
		opt.Positional(&paths),
	}

	// Options end at "--"; everything after it is a path, even "-l".
	if err := getarg.Parse(table, args, getarg.WithStopAtBareMarker(true)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "long=%v all=%v human=%v verbose=%d paths=%q\n", long, all, human, verbose, paths)
	return err
}
