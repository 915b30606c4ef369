// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"errors"
	"fmt"
)

// Outcome classifies the result of building an index or running a session.
type Outcome int

const (
	// Successful indicates every token was resolved and applied.
	Successful Outcome = iota
	// BareMarker indicates a lone "--" token was seen.
	BareMarker
	// UnknownOption indicates a token matched no registered option.
	UnknownOption
	// MissingArgument indicates a required option argument was absent.
	MissingArgument
	// IncompatibleCluster indicates an option that needs arguments was
	// bundled into a short-option cluster.
	IncompatibleCluster
	// ApplyFailed indicates a handler rejected its input.
	ApplyFailed
	// NoDefaultHandler indicates positional tokens were present but the
	// table has no catch-all handler.
	NoDefaultHandler
	// InitError indicates the option table could not be indexed.
	InitError
)

var outcomeNames = [...]string{
	Successful:          "successful",
	BareMarker:          "bare marker",
	UnknownOption:       "unknown option",
	MissingArgument:     "missing argument",
	IncompatibleCluster: "incompatible cluster",
	ApplyFailed:         "apply failed",
	NoDefaultHandler:    "no default handler",
	InitError:           "init error",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Sentinel errors, one per failing outcome. *Error values match these with
// errors.Is.
var (
	ErrBareMarker          = errors.New("bare option marker")
	ErrUnknownOption       = errors.New("unknown option")
	ErrMissingArgument     = errors.New("missing argument")
	ErrIncompatibleCluster = errors.New("option cannot be clustered")
	ErrApplyFailed         = errors.New("apply failed")
	ErrNoDefaultHandler    = errors.New("no default handler")
	ErrInit                = errors.New("init failed")
)

// ErrStop may be returned by a handler to end the session early. Parse then
// returns nil without examining the remaining tokens or running the
// catch-all. Help handlers use it so that nothing after the help option is
// parsed.
var ErrStop = errors.New("stop parsing")

func (o Outcome) sentinel() error {
	switch o {
	case BareMarker:
		return ErrBareMarker
	case UnknownOption:
		return ErrUnknownOption
	case MissingArgument:
		return ErrMissingArgument
	case IncompatibleCluster:
		return ErrIncompatibleCluster
	case ApplyFailed:
		return ErrApplyFailed
	case NoDefaultHandler:
		return ErrNoDefaultHandler
	case InitError:
		return ErrInit
	}
	return nil
}

// Error is returned for every outcome other than Successful.
type Error struct {
	Outcome Outcome
	Token   string // The argv token being processed, if any
	Option  string // The option involved, rendered as --long or -s
	Index   int    // Position of Token in the argument vector, -1 if not applicable
	Err     error  // Underlying cause (handler error, duplicate name, ...)
}

func (e *Error) Error() string {
	msg := e.Outcome.sentinel().Error()
	switch {
	case e.Option != "" && e.Token != "" && e.Option != e.Token:
		msg = fmt.Sprintf("%s: %s in %q", msg, e.Option, e.Token)
	case e.Option != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Option)
	case e.Token != "":
		msg = fmt.Sprintf("%s: %q", msg, e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's outcome.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Outcome.sentinel()
}

// OutcomeOf maps err back to an Outcome. A nil error is Successful and an
// error that is not an *Error is treated as ApplyFailed.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return Successful
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Outcome
	}
	return ApplyFailed
}

func newError(o Outcome, token string, index int, opt *Option, err error) *Error {
	e := &Error{Outcome: o, Token: token, Index: index, Err: err}
	if opt != nil {
		e.Option = opt.Name()
	}
	return e
}
