// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

// parseOption resolves the option token args[i] and dispatches it. It
// returns the number of tokens consumed after args[i].
func (s *Session) parseOption(args []string, i int) (int, error) {
	tok := args[i]
	if tok[1] == '-' {
		return s.parseLong(args, i)
	}
	return s.parseShort(args, i)
}

func (s *Session) parseLong(args []string, i int) (int, error) {
	tok := args[i]
	opt, ok := s.ix.Long(tok[2:])
	if !ok {
		return 0, newError(UnknownOption, tok, i, nil, nil)
	}
	return s.dispatch(opt, args, i)
}

func (s *Session) parseShort(args []string, i int) (int, error) {
	tok := args[i]
	if len(tok) == 2 {
		opt, ok := s.ix.Short(tok[1])
		if !ok {
			return 0, newError(UnknownOption, tok, i, nil, nil)
		}
		return s.dispatch(opt, args, i)
	}
	return 0, s.applyCluster(tok, i)
}

// clusterQueueSize covers typical clusters without a heap allocation.
const clusterQueueSize = 16

// applyCluster handles a token such as "-abc". Every character is resolved
// before any handler runs, so an unknown or unclusterable character leaves
// all options untouched. A cluster never consumes following tokens.
func (s *Session) applyCluster(tok string, i int) error {
	var buf [clusterQueueSize]*Option
	queue := buf[:0]
	for j := 1; j < len(tok); j++ {
		opt, ok := s.ix.Short(tok[j])
		if !ok {
			return &Error{Outcome: UnknownOption, Token: tok, Index: i, Option: string([]byte{'-', tok[j]})}
		}
		if !clusterable(opt) {
			return newError(IncompatibleCluster, tok, i, opt, nil)
		}
		queue = append(queue, opt)
	}
	for _, opt := range queue {
		var err error
		if opt.Arity == Help {
			err = s.help(opt, tok, i)
		} else {
			err = s.apply(opt, nil, tok, i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// clusterable reports whether opt can run inside a cluster, where it never
// receives arguments.
func clusterable(opt *Option) bool {
	switch opt.Arity {
	case None, Help:
		return true
	case Single, List:
		return opt.Optional
	}
	return false
}
