// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command getarg parses its own arguments with libgetarg and prints what it
// resolved.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/at2er/libgetarg/pkg/getarg"
	"github.com/at2er/libgetarg/pkg/opt"
	"github.com/at2er/libgetarg/pkg/tui"
	"github.com/at2er/libgetarg/pkg/usage"
)

const (
	flagEnableA uint64 = 1 << iota
	flagEnableB
	flagEnableC
)

var formats = []string{"plain", "json", "yaml", "toml"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		st     result
		flags  uint64
		format = "plain"
		helped bool
	)

	help := &usage.Usage{
		Program: "getarg",
		Args:    "[--] [ARGS...]",
		Header:  []string{"Resolve the given arguments and print the result."},
		Footer: []string{
			"A lone -- ends option parsing; everything after it is an argument.",
			"Exit status is 0 on success and 1 on any parse error.",
		},
		Exit: func(int) { helped = true },
	}

	table := []getarg.Option{
		opt.Flag("enable-a", getarg.NoShort, &flags, flagEnableA, "test flag a 001"),
		opt.Flag("enable-b", getarg.NoShort, &flags, flagEnableB, "test flag b 010"),
		opt.Flag("enable-c", getarg.NoShort, &flags, flagEnableC, "test flag c 100"),
		{Long: "help", Short: 'h', Arity: getarg.Help, Handler: help, Summary: "show this help"},
		opt.String("long-only", getarg.NoShort, &st.LongOnly, "test long option"),
		opt.String("", 's', &st.ShortOnly, "test short option"),
		opt.String("long-and-short-arg", 'x', &st.LongAndShortArg, "test long and short option"),
		opt.Uint("uint", 'u', &st.Uint, "test uint option argument"),
		opt.Strings("files", 'f', &st.Files, "test list option argument"),
		{
			Long:     "level",
			Short:    'l',
			Arity:    getarg.Single,
			Optional: true,
			Handler:  levelHandler(&st.Level),
			Summary:  "test optional argument",
			Doc:      "Given without a value, the level is set to \"default\".",
		},
		opt.Count("verbose", 'v', &st.Verbose, "count verbosity"),
		opt.Doc(
			opt.Func("format", getarg.NoShort, getarg.Single, func(v []string) error {
				if !slices.Contains(formats, v[0]) {
					return fmt.Errorf("unknown format %q (want one of %v)", v[0], formats)
				}
				format = v[0]
				return nil
			}, "output format"),
			"One of plain, json, yaml, toml.",
		),
		opt.Positional(&st.Args),
	}

	color := tui.NewColorizer(stderr)
	err := getarg.Parse(table, args,
		getarg.WithLogger(log.New(stderr, "getarg: ", 0)),
		getarg.WithOutput(stdout),
		getarg.WithFormatter(usage.Formatter{Title: "OPTIONS:", Color: tui.NewColorizer(stdout)}),
		getarg.WithStopAtBareMarker(true),
	)
	if helped {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, color.Wrap(tui.ColorRed, fmt.Sprintf("error: %s", getarg.OutcomeOf(err))))
		fmt.Fprintln(stderr, color.Wrap(tui.ColorDim, "Try 'getarg --help' for more information."))
		return 1
	}

	st.EnableA = flags&flagEnableA != 0
	st.EnableB = flags&flagEnableB != 0
	st.EnableC = flags&flagEnableC != 0
	if err := writeResult(stdout, format, &st); err != nil {
		fmt.Fprintln(stderr, color.Wrap(tui.ColorRed, fmt.Sprintf("error: %v", err)))
		return 1
	}
	return 0
}

func levelHandler(dst *string) getarg.Handler {
	return getarg.HandlerFunc(func(_ *getarg.Option, args []string) error {
		if len(args) == 0 {
			*dst = "default"
			return nil
		}
		*dst = args[0]
		return nil
	})
}
