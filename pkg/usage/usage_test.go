// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/at2er/libgetarg/pkg/getarg"
	"github.com/google/go-cmp/cmp"
)

var nop = getarg.HandlerFunc(func(*getarg.Option, []string) error { return nil })

func demoOptions() []getarg.Option {
	return []getarg.Option{
		{Long: "enable-a", Arity: getarg.None, Handler: nop, Summary: "test flag a 001"},
		{Long: "help", Short: 'h', Arity: getarg.Help, Summary: "show this help"},
		{Long: "long-only", Arity: getarg.Single, Handler: nop, Summary: "test long option"},
		{Short: 's', Arity: getarg.Single, Handler: nop, Summary: "test short option"},
		{Long: "level", Arity: getarg.Single, Optional: true, Handler: nop, Summary: "log level",
			Doc: "One of debug, info, warn.\nDefaults to info."},
		{Long: "files", Short: 'f', Arity: getarg.List, Handler: nop, Summary: "input files"},
		{Long: "tags", Arity: getarg.List, Optional: true, Handler: nop},
	}
}

func TestFormatOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := (Formatter{Title: "OPTIONS:"}).FormatOptions(&buf, demoOptions()); err != nil {
		t.Fatalf("FormatOptions: %v", err)
	}
	want := strings.Join([]string{
		"OPTIONS:",
		"      --enable-a:         test flag a 001",
		"  -h, --help:             show this help",
		"      --long-only <arg>:  test long option",
		"  -s <arg>:               test short option",
		"      --level [arg]:      log level",
		"                          One of debug, info, warn.",
		"                          Defaults to info.",
		"  -f, --files <arg>...:   input files",
		"      --tags [arg...]:",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		opt  getarg.Option
		want string
	}{
		{getarg.Option{Long: "uint", Short: 'u', Arity: getarg.Single}, "-u, --uint <arg>:"},
		{getarg.Option{Short: 'x', Arity: getarg.None}, "-x:"},
		{getarg.Option{Long: "x", Arity: getarg.List, Optional: true}, "    --x [arg...]:"},
		{getarg.Option{Short: 0xe9, Arity: getarg.None}, "-\xe9:"},
	}
	for _, tt := range tests {
		if got := Label(&tt.opt); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.opt, got, tt.want)
		}
	}
}

func TestUsageHelp(t *testing.T) {
	exited := false
	u := &Usage{
		Program: "getarg",
		Args:    "[FILE...]",
		Header:  []string{"Resolve arguments and print them."},
		Footer:  []string{"Exit status is 1 on any parse error."},
		Exit:    func(int) { exited = true },
	}
	table := append(demoOptions()[:2:2], getarg.End(nil))
	table[1].Handler = u

	var out bytes.Buffer
	err := getarg.Parse(table, []string{"--help", "--unknown"},
		getarg.WithOutput(&out),
		getarg.WithFormatter(Formatter{Title: "OPTIONS:"}),
		getarg.WithLogger(nil))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !exited {
		t.Error("Exit was not called")
	}
	want := strings.Join([]string{
		"Usage: getarg [OPTIONS] [FILE...]",
		"Resolve arguments and print them.",
		"",
		"OPTIONS:",
		"      --enable-a:  test flag a 001",
		"  -h, --help:      show this help",
		"",
		"Exit status is 1 on any parse error.",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
