// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import "errors"

// dispatch invokes opt, found at args[i], according to its arity and returns
// how many of the tokens after args[i] it consumed.
func (s *Session) dispatch(opt *Option, args []string, i int) (int, error) {
	tok := args[i]
	rest := args[i+1:]

	switch opt.Arity {
	case Help:
		return 0, s.help(opt, tok, i)

	case None:
		return 0, s.apply(opt, nil, tok, i)

	case List:
		n := 0
		for n < len(rest) && !hasMarker(rest[n]) {
			n++
		}
		if n == 0 {
			if !opt.Optional {
				return 0, newError(MissingArgument, tok, i, opt, nil)
			}
			return 0, s.apply(opt, nil, tok, i)
		}
		if err := s.apply(opt, rest[:n:n], tok, i); err != nil {
			return 0, err
		}
		return n, nil

	case Single:
		if len(rest) == 0 || hasMarker(rest[0]) {
			if !opt.Optional {
				return 0, newError(MissingArgument, tok, i, opt, nil)
			}
			return 0, s.apply(opt, nil, tok, i)
		}
		if err := s.apply(opt, rest[:1:1], tok, i); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, newError(UnknownOption, tok, i, opt, nil)
}

func (s *Session) apply(opt *Option, args []string, tok string, i int) error {
	if err := opt.Handler.Apply(opt, args); err != nil {
		if errors.Is(err, ErrStop) {
			return ErrStop
		}
		return newError(ApplyFailed, tok, i, opt, err)
	}
	return nil
}

// help runs the help routine for opt: the handler's framing hooks around the
// formatted option table, then the handler itself.
func (s *Session) help(opt *Option, tok string, i int) error {
	hh, framed := opt.Handler.(HelpHandler)
	if framed {
		if err := hh.BeforeOptions(s.out, opt); err != nil {
			return newError(ApplyFailed, tok, i, opt, err)
		}
	}
	if s.formatter != nil {
		if err := s.formatter.FormatOptions(s.out, s.ix.Options()); err != nil {
			return newError(ApplyFailed, tok, i, opt, err)
		}
	}
	if framed {
		if err := hh.AfterOptions(s.out, opt); err != nil {
			return newError(ApplyFailed, tok, i, opt, err)
		}
	}
	if opt.Handler == nil {
		return nil
	}
	return s.apply(opt, nil, tok, i)
}
