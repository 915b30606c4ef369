// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"fmt"
	"io"
)

// NoShort marks an option without a short name.
const NoShort byte = 0

// Arity describes how many argument tokens an option consumes.
type Arity int

const (
	// None options never consume arguments.
	None Arity = iota
	// Single options consume exactly one argument, or zero when Optional.
	Single
	// List options consume a contiguous run of non-option tokens.
	List
	// Help options run the help routine.
	Help
)

func (a Arity) String() string {
	switch a {
	case None:
		return "none"
	case Single:
		return "single"
	case List:
		return "list"
	case Help:
		return "help"
	}
	return fmt.Sprintf("Arity(%d)", int(a))
}

// Handler receives the arguments resolved for an option. The argument count
// is len(args); a nil or empty slice means the option was given without
// arguments.
type Handler interface {
	Apply(opt *Option, args []string) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(opt *Option, args []string) error

func (f HandlerFunc) Apply(opt *Option, args []string) error {
	return f(opt, args)
}

// HelpHandler is a Handler that frames the rendered option table. The
// session calls BeforeOptions, renders the table with its Formatter, calls
// AfterOptions and finally Apply.
type HelpHandler interface {
	Handler
	BeforeOptions(w io.Writer, opt *Option) error
	AfterOptions(w io.Writer, opt *Option) error
}

// Formatter renders the option table for help output.
type Formatter interface {
	FormatOptions(w io.Writer, opts []Option) error
}

// Option describes one command-line option. Options are read-only once
// handed to NewIndex or NewSession.
type Option struct {
	Long     string // Long name without the leading "--"; empty for none
	Short    byte   // Short name; NoShort for none
	Arity    Arity
	Optional bool // The argument of a Single or List option may be omitted
	Handler  Handler
	Summary  string // One-line description used in help output
	Doc      string // Optional extended usage text
}

// End returns the sentinel option that terminates a table. h, which may be
// nil, receives every positional argument once parsing finishes.
func End(h Handler) Option {
	return Option{Handler: h}
}

// IsEnd reports whether o is a table sentinel.
func (o *Option) IsEnd() bool {
	return o.Long == "" && o.Short == NoShort
}

// Name returns the option as it would be typed, preferring the long form.
func (o *Option) Name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	if o.Short != NoShort {
		return string([]byte{'-', o.Short})
	}
	return ""
}
