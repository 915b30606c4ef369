// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package getarg resolves a raw argument vector into calls of caller-supplied
// option handlers.
//
// A program describes its options as a table of Option values terminated by
// End. Each option has a long name, a short name or both, an Arity and a
// Handler:
//
//	var verbose bool
//	var files []string
//	table := []getarg.Option{
//	    {Long: "verbose", Short: 'v', Arity: getarg.None, Handler: setVerbose},
//	    {Long: "files", Arity: getarg.List, Handler: addFiles},
//	    getarg.End(collectPositional),
//	}
//	if err := getarg.Parse(table, os.Args[1:]); err != nil {
//	    os.Exit(1)
//	}
//
// # Token Syntax
//
//   - "--name" selects a long option. Long names are resolved through a
//     prefix tree, so "list" and "list-all" never match each other.
//   - "-x" selects a short option.
//   - "-abc" is a cluster: every character must be a short option that can
//     run without arguments. Resolution is all-or-nothing and the cluster
//     never consumes the following tokens.
//   - "--" on its own is the bare marker. By default it stops the session
//     with Outcome BareMarker; WithStopAtBareMarker turns it into an
//     end-of-options separator.
//   - Every other token, including a lone "-", is positional. Positional
//     tokens are handed, in order, to the sentinel's handler once all
//     options have been applied.
//
// # Arity
//
// None options take no arguments. Single options take the next token unless
// it starts with "-"; when it does (or there is none) an Optional option is
// applied without arguments and a required one fails with MissingArgument.
// List options take the longest run of following tokens that do not start
// with "-"; an empty run is only accepted for Optional options. A lone "-"
// counts as starting with "-" here, so it is never taken as an argument. Help options
// run the help routine: HelpHandler framing, the configured Formatter, then
// the handler.
//
// # Errors
//
// Parsing is fail-fast. The first problem aborts the session and is returned
// as an *Error carrying its Outcome; use errors.Is with the Err* sentinels or
// OutcomeOf to tell outcomes apart. Handler errors surface as ApplyFailed and
// remain reachable through errors.Unwrap. A handler that returns ErrStop
// ends the session successfully instead.
package getarg
