// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"fmt"
	"io"
	"os"

	"github.com/at2er/libgetarg/pkg/getarg"
)

// HelpText frames the option table with fixed lines and then exits.
type HelpText struct {
	Before []string // Printed before the option table
	After  []string // Printed after the option table

	// Exit is called with status 0 once help has been shown. Nil means
	// os.Exit. If Exit returns, parsing stops with getarg.ErrStop.
	Exit func(code int)
}

var _ getarg.HelpHandler = (*HelpText)(nil)

func (h *HelpText) BeforeOptions(w io.Writer, _ *getarg.Option) error {
	return writeLines(w, h.Before)
}

func (h *HelpText) AfterOptions(w io.Writer, _ *getarg.Option) error {
	return writeLines(w, h.After)
}

func (h *HelpText) Apply(*getarg.Option, []string) error {
	exit := h.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(0)
	return getarg.ErrStop
}

// Help returns a Help option driven by h.
func Help(long string, short byte, h *HelpText, summary string) getarg.Option {
	return getarg.Option{
		Long:    long,
		Short:   short,
		Arity:   getarg.Help,
		Handler: h,
		Summary: summary,
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
