// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"errors"
	"io"
	"log"
	"os"
)

// Logger receives one diagnostic line per failed session.
type Logger interface {
	Printf(format string, v ...any)
}

// Session owns an Index and drives the parse of an argument vector against
// it. A Session is not shared between goroutines; build one per parse or per
// goroutine.
type Session struct {
	ix *Index

	log              Logger
	out              io.Writer
	formatter        Formatter
	stopAtBareMarker bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the diagnostic sink. A nil logger silences diagnostics.
func WithLogger(l Logger) SessionOption {
	return func(s *Session) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.log = l
	}
}

// WithOutput sets where help output is written. The default is os.Stdout.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithFormatter sets the formatter that renders the option table for Help
// options.
func WithFormatter(f Formatter) SessionOption {
	return func(s *Session) {
		s.formatter = f
	}
}

// WithStopAtBareMarker makes a lone "--" end option parsing: every token
// after it is treated as positional and the session completes normally.
// Without it the session stops with Outcome BareMarker.
func WithStopAtBareMarker(stop bool) SessionOption {
	return func(s *Session) {
		s.stopAtBareMarker = stop
	}
}

// NewSession indexes table and returns a session ready to parse.
func NewSession(table []Option, opts ...SessionOption) (*Session, error) {
	s := &Session{
		log: log.New(os.Stderr, "libgetarg: ", 0),
		out: os.Stdout,
	}
	for _, o := range opts {
		o(s)
	}
	ix, err := NewIndex(table)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ix = ix
	return s, nil
}

// Parse resolves table against args and invokes handlers. args must not
// include the program name.
func Parse(table []Option, args []string, opts ...SessionOption) error {
	s, err := NewSession(table, opts...)
	if err != nil {
		return err
	}
	return s.Parse(args)
}

// Index returns the session's index.
func (s *Session) Index() *Index {
	return s.ix
}

// Parse walks args (without the program name), dispatching option tokens as
// they are met and collecting every other token for the catch-all handler,
// which runs once after the last token. The first failure stops the parse
// and is returned as an *Error; no later token is looked at.
func (s *Session) Parse(args []string) error {
	var positional []string
	first := -1
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !isOption(tok) {
			if first < 0 {
				first = i
			}
			positional = append(positional, tok)
			continue
		}
		if tok == "--" {
			if !s.stopAtBareMarker {
				return newError(BareMarker, tok, i, nil, nil)
			}
			if first < 0 && i+1 < len(args) {
				first = i + 1
			}
			positional = append(positional, args[i+1:]...)
			break
		}
		n, err := s.parseOption(args, i)
		if errors.Is(err, ErrStop) {
			return nil
		}
		if err != nil {
			return s.fail(err)
		}
		i += n
	}
	if len(positional) == 0 {
		return nil
	}
	end := s.ix.Default()
	if end.Handler == nil {
		return s.fail(newError(NoDefaultHandler, positional[0], first, nil, nil))
	}
	if err := end.Handler.Apply(end, positional); err != nil {
		if errors.Is(err, ErrStop) {
			return nil
		}
		return s.fail(newError(ApplyFailed, positional[0], first, nil, err))
	}
	return nil
}

func (s *Session) fail(err error) error {
	s.log.Printf("%v", err)
	return err
}

// isOption reports whether tok starts with the option marker. A lone "-" is
// an ordinary argument when the driver meets it.
func isOption(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// hasMarker reports whether tok begins with the option marker at all. It
// ends argument runs, so a lone "-" is never taken as an option argument.
func hasMarker(tok string) bool {
	return len(tok) > 0 && tok[0] == '-'
}
