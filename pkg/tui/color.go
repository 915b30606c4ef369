// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	ColorReset  = color.Reset
	ColorBold   = color.Bold
	ColorRed    = color.FgRed
	ColorGreen  = color.FgGreen
	ColorYellow = color.FgYellow
	ColorCyan   = color.FgCyan
	ColorDim    = color.FgHiBlack
)

var isTerminalFn = term.IsTerminal

type Colorizer struct {
	Enabled bool
}

// NewColorizer enables colour only when w is a terminal and neither NO_COLOR
// nor a dumb TERM says otherwise.
func NewColorizer(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(attr color.Attribute, text string) string {
	if !c.Enabled || attr == ColorReset || text == "" {
		return text
	}
	cl := color.New(attr)
	cl.EnableColor()
	return cl.Sprint(text)
}
