// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/at2er/libgetarg/pkg/getarg"
	"github.com/google/go-cmp/cmp"
)

type values struct {
	Flags    uint64
	Verbose  int
	Quiet    bool
	LongOnly string
	Short    string
	Level    string
	Uint     uint64
	Int      int64
	Ratio    float64
	Timeout  time.Duration
	Files    []string
	Tags     []string
	Rest     []string
}

func table(v *values) []getarg.Option {
	return []getarg.Option{
		Flag("enable-a", getarg.NoShort, &v.Flags, 1, "test flag a 001"),
		Flag("enable-b", getarg.NoShort, &v.Flags, 1<<1, "test flag b 010"),
		Flag("enable-c", 'c', &v.Flags, 1<<2, "test flag c 100"),
		Count("verbose", 'v', &v.Verbose, "more output"),
		Bool("quiet", 'q', &v.Quiet, "less output"),
		String("long-only", getarg.NoShort, &v.LongOnly, "test long option"),
		String("", 's', &v.Short, "test short option"),
		Optional(String("level", 'L', &v.Level, "log level")),
		Uint("uint", 'u', &v.Uint, "test uint option argument"),
		Int("int", 'i', &v.Int, "signed"),
		Float("ratio", 'r', &v.Ratio, "ratio"),
		Duration("timeout", 't', &v.Timeout, "timeout"),
		Strings("files", 'f', &v.Files, "input files"),
		Optional(Strings("tags", 'T', &v.Tags, "tags")),
		Positional(&v.Rest),
	}
}

func TestValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want values
	}{
		{
			name: "demo flags",
			args: []string{"--enable-a", "--enable-c", "--long-only", "lo", "-s", "so", "-u", "42"},
			want: values{Flags: 0b101, LongOnly: "lo", Short: "so", Uint: 42},
		},
		{
			name: "cluster of counters and flags",
			args: []string{"-vvcq", "-v"},
			want: values{Flags: 0b100, Verbose: 3, Quiet: true},
		},
		{
			name: "optional string without argument keeps value",
			args: []string{"--level", "--level", "debug", "--level"},
			want: values{Level: "debug"},
		},
		{
			name: "lists accumulate",
			args: []string{"-f", "a", "b", "--tags", "-f", "c", "pos", "--tags", "t1"},
			want: values{Files: []string{"a", "b", "c", "pos"}, Tags: []string{"t1"}},
		},
		{
			name: "float and duration",
			args: []string{"-r", "0.25", "-t", "1m30s", "x", "y"},
			want: values{Ratio: 0.25, Timeout: 90 * time.Second, Rest: []string{"x", "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got values
			err := getarg.Parse(table(&got), tt.args, getarg.WithLogger(nil))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNumericRejectsTrailingGarbage(t *testing.T) {
	tests := []struct {
		args []string
	}{
		{[]string{"--uint", "12x"}},
		{[]string{"-u", "1.5"}},
		{[]string{"-u", " 1"}},
		{[]string{"-u", "18446744073709551616"}},
		{[]string{"--int", "3abc"}},
		{[]string{"--ratio", "0.5f"}},
		{[]string{"--timeout", "10"}},
	}
	for _, tt := range tests {
		var got values
		err := getarg.Parse(table(&got), tt.args, getarg.WithLogger(nil))
		if o := getarg.OutcomeOf(err); o != getarg.ApplyFailed {
			t.Errorf("Parse(%q) outcome = %v, want ApplyFailed", tt.args, o)
			continue
		}
		if got.Uint != 0 || got.Int != 0 || got.Ratio != 0 || got.Timeout != 0 {
			t.Errorf("Parse(%q) stored a partial value: %+v", tt.args, got)
		}
	}
}

// Negative numbers look like options, so they never reach the handler.
func TestNegativeNumberIsMissingArgument(t *testing.T) {
	var got values
	err := getarg.Parse(table(&got), []string{"--int", "-7"}, getarg.WithLogger(nil))
	if o := getarg.OutcomeOf(err); o != getarg.MissingArgument {
		t.Fatalf("OutcomeOf = %v, want MissingArgument", o)
	}
}

func TestUintErrorUnwraps(t *testing.T) {
	var n uint64
	err := getarg.Parse([]getarg.Option{Uint("uint", 'u', &n, ""), getarg.End(nil)}, []string{"-u", "9z"}, getarg.WithLogger(nil))
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("errors.Is(err, strconv.ErrSyntax) = false for %v", err)
	}
	if want := `apply failed: --uint in "-u": invalid uint value "9z": strconv.ParseUint: parsing "9z": invalid syntax`; err.Error() != want {
		t.Errorf("err = %q\nwant  %q", err.Error(), want)
	}
}

func TestFuncAndDoc(t *testing.T) {
	var seen [][]string
	o := Doc(Func("pair", 'p', getarg.List, func(args []string) error {
		seen = append(seen, args)
		return nil
	}, "pairs"), "Takes any number of KEY=VALUE pairs.")
	if o.Doc != "Takes any number of KEY=VALUE pairs." || o.Summary != "pairs" {
		t.Fatalf("Doc/Summary not set: %+v", o)
	}
	if err := getarg.Parse([]getarg.Option{o, getarg.End(nil)}, []string{"-p", "a=1", "b=2"}, getarg.WithLogger(nil)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([][]string{{"a=1", "b=2"}}, seen); diff != "" {
		t.Errorf("seen mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpText(t *testing.T) {
	exitCode := -1
	h := &HelpText{
		Before: []string{"usage: getarg: [OPTIONS]...", ""},
		After:  []string{"", "Report bugs upstream."},
		Exit:   func(code int) { exitCode = code },
	}
	tbl := []getarg.Option{
		Help("help", 'h', h, "show help"),
		getarg.End(nil),
	}
	var out bytes.Buffer
	if err := getarg.Parse(tbl, []string{"-h", "--not-an-option"}, getarg.WithOutput(&out), getarg.WithLogger(nil)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if exitCode != 0 {
		t.Errorf("exit code = %d, want 0", exitCode)
	}
	want := "usage: getarg: [OPTIONS]...\n\n\nReport bugs upstream.\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
