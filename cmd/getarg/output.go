// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type result struct {
	EnableA         bool     `json:"enable_a" yaml:"enable_a" toml:"enable_a"`
	EnableB         bool     `json:"enable_b" yaml:"enable_b" toml:"enable_b"`
	EnableC         bool     `json:"enable_c" yaml:"enable_c" toml:"enable_c"`
	LongOnly        string   `json:"long_only,omitempty" yaml:"long_only,omitempty" toml:"long_only,omitempty"`
	LongAndShortArg string   `json:"long_and_short_arg,omitempty" yaml:"long_and_short_arg,omitempty" toml:"long_and_short_arg,omitempty"`
	ShortOnly       string   `json:"short_only,omitempty" yaml:"short_only,omitempty" toml:"short_only,omitempty"`
	Uint            uint64   `json:"uint,omitempty" yaml:"uint,omitempty" toml:"uint,omitempty"`
	Files           []string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"`
	Level           string   `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`
	Verbose         int      `json:"verbose,omitempty" yaml:"verbose,omitempty" toml:"verbose,omitempty"`
	Args            []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
}

func writeResult(w io.Writer, format string, r *result) error {
	switch format {
	case "json":
		j, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", j)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("failed to marshal toml: %w", err)
		}
		return nil
	case "plain", "":
		return writePlain(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writePlain(w io.Writer, r *result) error {
	var b strings.Builder
	if r.LongOnly != "" {
		fmt.Fprintf(&b, "--long-only(string): %s\n", r.LongOnly)
	}
	if r.LongAndShortArg != "" {
		fmt.Fprintf(&b, "--long-and-short-arg|-x(string): %s\n", r.LongAndShortArg)
	}
	if r.ShortOnly != "" {
		fmt.Fprintf(&b, "-s(string): %s\n", r.ShortOnly)
	}
	if r.Uint != 0 {
		fmt.Fprintf(&b, "--uint|-u(uint64): %d\n", r.Uint)
	}
	if len(r.Files) > 0 {
		fmt.Fprintf(&b, "--files|-f(list): %s\n", strings.Join(r.Files, " "))
	}
	if r.Level != "" {
		fmt.Fprintf(&b, "--level|-l(optional): %s\n", r.Level)
	}
	if r.Verbose != 0 {
		fmt.Fprintf(&b, "--verbose|-v(count): %d\n", r.Verbose)
	}
	if r.EnableA {
		b.WriteString("--enable-a\n")
	}
	if r.EnableB {
		b.WriteString("--enable-b\n")
	}
	if r.EnableC {
		b.WriteString("--enable-c\n")
	}
	for i, a := range r.Args {
		fmt.Fprintf(&b, "arg[%d]: %s\n", i, a)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
