// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"fmt"
	"strings"
)

// Index resolves long and short option names against a table. An Index is
// immutable after Build returns and may be shared by concurrent readers.
type Index struct {
	opts  []Option
	long  trie
	short [256]int16 // table position + 1; 0 means unset
	end   Option
}

// NewIndex builds an index over table. See Build.
func NewIndex(table []Option) (*Index, error) {
	ix := new(Index)
	if err := ix.Build(table); err != nil {
		return nil, err
	}
	return ix, nil
}

// Build discards the current contents of ix and indexes table. The table
// must end with a sentinel (see End); entries after the first sentinel are
// ignored. On failure ix is left empty and the error is an *Error with
// Outcome InitError.
func (ix *Index) Build(table []Option) error {
	ix.clear()
	if err := ix.build(table); err != nil {
		ix.clear()
		return err
	}
	return nil
}

func (ix *Index) clear() {
	ix.opts = nil
	ix.long.reset()
	ix.short = [256]int16{}
	ix.end = Option{}
}

func (ix *Index) build(table []Option) error {
	end := -1
	for i := range table {
		if table[i].IsEnd() {
			end = i
			break
		}
	}
	if end < 0 {
		return newError(InitError, "", -1, nil, fmt.Errorf("option table has no end sentinel"))
	}
	if end >= 1<<15-1 {
		return newError(InitError, "", -1, nil, fmt.Errorf("option table too large (%d entries)", end))
	}
	ix.opts = table[:end:end]
	ix.end = table[end]

	for i := range ix.opts {
		o := &ix.opts[i]
		if err := validate(o); err != nil {
			return newError(InitError, "", -1, o, err)
		}
		if o.Long != "" && !ix.long.insert(o.Long, i) {
			return newError(InitError, "", -1, o, fmt.Errorf("duplicate long name %q", o.Long))
		}
		if o.Short == NoShort {
			continue
		}
		if ix.short[o.Short] != 0 {
			return newError(InitError, "", -1, o, fmt.Errorf("duplicate short name %q", o.Short))
		}
		ix.short[o.Short] = int16(i + 1)
	}
	return nil
}

func validate(o *Option) error {
	switch o.Arity {
	case None, Single, List, Help:
	default:
		return fmt.Errorf("invalid arity %v", o.Arity)
	}
	if o.Short == '-' {
		return fmt.Errorf("short name cannot be '-'")
	}
	if strings.HasPrefix(o.Long, "-") {
		return fmt.Errorf("long name %q must not start with '-'", o.Long)
	}
	if o.Handler == nil && o.Arity != Help {
		return fmt.Errorf("no handler")
	}
	return nil
}

// Long returns the option registered under the long name (without "--").
func (ix *Index) Long(name string) (*Option, bool) {
	pos, ok := ix.long.lookup(name)
	if !ok {
		return nil, false
	}
	return &ix.opts[pos], true
}

// Short returns the option registered under the short name c.
func (ix *Index) Short(c byte) (*Option, bool) {
	pos := ix.short[c]
	if pos == 0 {
		return nil, false
	}
	return &ix.opts[pos-1], true
}

// Options returns the indexed options in table order, without the sentinel.
func (ix *Index) Options() []Option {
	return ix.opts
}

// Default returns the table sentinel. Its Handler, if non-nil, is the
// catch-all for positional arguments.
func (ix *Index) Default() *Option {
	return &ix.end
}
