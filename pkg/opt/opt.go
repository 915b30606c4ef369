// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opt provides getarg options that store their arguments into Go
// variables.
//
//	var (
//	    flags uint64
//	    out   string
//	    n     uint64
//	)
//	table := []getarg.Option{
//	    opt.Flag("enable-a", getarg.NoShort, &flags, 1<<0, "enable a"),
//	    opt.String("output", 'o', &out, "output file"),
//	    opt.Uint("count", 'n', &n, "how many"),
//	    getarg.End(nil),
//	}
//
// Numeric options reject any value that is not entirely a number; "12x" is
// an error, never 12.
package opt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/at2er/libgetarg/pkg/getarg"
)

// Func returns an option of the given arity that calls fn with its
// arguments.
func Func(long string, short byte, arity getarg.Arity, fn func(args []string) error, summary string) getarg.Option {
	return getarg.Option{
		Long:    long,
		Short:   short,
		Arity:   arity,
		Handler: getarg.HandlerFunc(func(_ *getarg.Option, args []string) error { return fn(args) }),
		Summary: summary,
	}
}

// Optional marks o's argument as optional.
func Optional(o getarg.Option) getarg.Option {
	o.Optional = true
	return o
}

// Doc attaches extended usage text to o.
func Doc(o getarg.Option, doc string) getarg.Option {
	o.Doc = doc
	return o
}

// Flag ORs mask into *dst each time the option is given.
func Flag(long string, short byte, dst *uint64, mask uint64, summary string) getarg.Option {
	return Func(long, short, getarg.None, func([]string) error {
		*dst |= mask
		return nil
	}, summary)
}

// Bool sets *dst to true.
func Bool(long string, short byte, dst *bool, summary string) getarg.Option {
	return Func(long, short, getarg.None, func([]string) error {
		*dst = true
		return nil
	}, summary)
}

// Count increments *dst each time the option is given, so "-vvv" counts 3.
func Count(long string, short byte, dst *int, summary string) getarg.Option {
	return Func(long, short, getarg.None, func([]string) error {
		*dst++
		return nil
	}, summary)
}

// String stores the option's argument in *dst. When the option is Optional
// and given without an argument, *dst is left unchanged.
func String(long string, short byte, dst *string, summary string) getarg.Option {
	return single(long, short, summary, func(v string) error {
		*dst = v
		return nil
	})
}

// Int stores the option's base-10 argument in *dst.
func Int(long string, short byte, dst *int64, summary string) getarg.Option {
	return single(long, short, summary, func(v string) error {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", v, err)
		}
		*dst = i
		return nil
	})
}

// Uint stores the option's base-10 argument in *dst.
func Uint(long string, short byte, dst *uint64, summary string) getarg.Option {
	return single(long, short, summary, func(v string) error {
		u, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", v, err)
		}
		*dst = u
		return nil
	})
}

// Float stores the option's argument in *dst.
func Float(long string, short byte, dst *float64, summary string) getarg.Option {
	return single(long, short, summary, func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid float value %q: %w", v, err)
		}
		*dst = f
		return nil
	})
}

// Duration stores the option's argument, parsed by time.ParseDuration, in
// *dst.
func Duration(long string, short byte, dst *time.Duration, summary string) getarg.Option {
	return single(long, short, summary, func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*dst = d
		return nil
	})
}

// Strings appends every argument of the option to *dst.
func Strings(long string, short byte, dst *[]string, summary string) getarg.Option {
	return Func(long, short, getarg.List, func(args []string) error {
		*dst = append(*dst, args...)
		return nil
	}, summary)
}

// Positional returns the table sentinel, collecting positional arguments
// into *dst.
func Positional(dst *[]string) getarg.Option {
	return getarg.End(getarg.HandlerFunc(func(_ *getarg.Option, args []string) error {
		*dst = append(*dst, args...)
		return nil
	}))
}

func single(long string, short byte, summary string, set func(string) error) getarg.Option {
	return Func(long, short, getarg.Single, func(args []string) error {
		switch len(args) {
		case 0:
			return nil
		case 1:
			return set(args[0])
		}
		return fmt.Errorf("want 1 argument, got %d", len(args))
	}, summary)
}
