// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders getarg option tables for help output.
package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/at2er/libgetarg/pkg/getarg"
	"github.com/at2er/libgetarg/pkg/tui"
)

// Formatter renders one row per option:
//
//	  -x, --long-and-short-arg <arg>:  test long and short option
//	      --long-only <arg>:           test long option
//	  -s <arg>:                        test short option
//
// Extended docs are printed on the following lines, aligned with the
// summaries.
type Formatter struct {
	Title string // Heading printed above the rows, e.g. "OPTIONS:"
	Color tui.Colorizer
}

var _ getarg.Formatter = Formatter{}

func (f Formatter) FormatOptions(w io.Writer, opts []getarg.Option) error {
	var b strings.Builder
	if f.Title != "" {
		b.WriteString(f.Color.Wrap(tui.ColorBold, f.Title))
		b.WriteString("\n")
	}

	labels := make([]string, len(opts))
	width := 0
	for i := range opts {
		labels[i] = Label(&opts[i])
		width = max(width, len(labels[i]))
	}

	for i := range opts {
		o := &opts[i]
		label := labels[i]
		pad := strings.Repeat(" ", width-len(label))
		b.WriteString("  ")
		b.WriteString(f.Color.Wrap(tui.ColorCyan, label))
		if o.Summary != "" {
			b.WriteString(pad)
			b.WriteString("  ")
			b.WriteString(o.Summary)
		}
		b.WriteString("\n")
		if o.Doc == "" {
			continue
		}
		indent := strings.Repeat(" ", 2+width+2)
		for _, line := range strings.Split(strings.TrimRight(o.Doc, "\n"), "\n") {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString(indent)
			b.WriteString(f.Color.Wrap(tui.ColorDim, line))
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Label returns the left-hand column for o, including a trailing colon.
// Long-only options are indented so their names line up with options that
// also have a short form.
func Label(o *getarg.Option) string {
	var b strings.Builder
	switch {
	case o.Short != getarg.NoShort && o.Long != "":
		b.WriteByte('-')
		b.WriteByte(o.Short)
		b.WriteString(", --")
		b.WriteString(o.Long)
	case o.Short != getarg.NoShort:
		b.WriteByte('-')
		b.WriteByte(o.Short)
	default:
		b.WriteString("    --")
		b.WriteString(o.Long)
	}
	b.WriteString(argHint(o))
	b.WriteString(":")
	return b.String()
}

func argHint(o *getarg.Option) string {
	switch o.Arity {
	case getarg.Single:
		if o.Optional {
			return " [arg]"
		}
		return " <arg>"
	case getarg.List:
		if o.Optional {
			return " [arg...]"
		}
		return " <arg>..."
	}
	return ""
}

// Usage is a getarg.HelpHandler that prints a usage line before the option
// table and optional footer lines after it. Exit, when set, runs after the
// help has been written; if it returns, the session stops with
// getarg.ErrStop so no later token is parsed.
type Usage struct {
	Program string
	Args    string   // Synopsis after "[OPTIONS]", e.g. "FILE..."
	Header  []string // Lines between the usage line and the table
	Footer  []string // Lines after the table
	Exit    func(code int)
}

var _ getarg.HelpHandler = (*Usage)(nil)

func (u *Usage) BeforeOptions(w io.Writer, _ *getarg.Option) error {
	line := "Usage: "
	if u.Program != "" {
		line += u.Program + " "
	}
	line += "[OPTIONS]"
	if u.Args != "" {
		line += " " + u.Args
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, l := range u.Header {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (u *Usage) AfterOptions(w io.Writer, _ *getarg.Option) error {
	if len(u.Footer) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, l := range u.Footer {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usage) Apply(*getarg.Option, []string) error {
	if u.Exit != nil {
		u.Exit(0)
	}
	return getarg.ErrStop
}
