// SPDX-License-Identifier: MIT

// Package errkind classifies the failures of an analytics run.
//
// Every error an engine returns is one of:
//
//	Configuration     bad input detected at construction; never retried.
//	ResourceExceeded  the memory estimate exceeds the caller's budget; nothing was allocated.
//	Execution         a worker failed mid-run; the run was aborted and no partial result exists.
//
// Cancellation is not a failure. Engines report it with ErrCancelled so callers can
// tell "stopped on request" apart from both success and the kinds above.
//
// Usage:
//
//	if errors.Is(err, errkind.ErrConfiguration) { /* fix the input */ }
//	var e *errkind.Error
//	if errors.As(err, &e) { log.Error("run failed", "kind", e.Kind, "op", e.Op) }
package errkind

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the failure class of an Error.
type Kind int

const (
	// Configuration marks invalid user input.
	Configuration Kind = iota + 1
	// ResourceExceeded marks a rejected memory estimate.
	ResourceExceeded
	// Execution marks a failure while workers were running.
	Execution
)

// String returns the taxonomy name of k.
func (k Kind) String() string {
	switch k {
	case Configuration:
		return "ConfigurationError"
	case ResourceExceeded:
		return "ResourceExceededError"
	case Execution:
		return "ExecutionError"
	default:
		return "UnknownError"
	}
}

// Kind sentinels. errors.Is(err, ErrConfiguration) holds for any *Error of that kind.
var (
	ErrConfiguration    = &Error{Kind: Configuration}
	ErrResourceExceeded = &Error{Kind: ResourceExceeded}
	ErrExecution        = &Error{Kind: Execution}
)

// ErrCancelled reports a clean early exit requested through a context.
var ErrCancelled = errors.New("run cancelled")

// Error is a classified failure with optional operation context and cause.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "betweenness.accumulate"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg += " [" + e.Op + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches kind sentinels: a bare sentinel (no op, message or cause) matches
// every Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" && t.Message == "" && t.Cause == nil {
		return e.Kind == t.Kind
	}

	return e == t
}

// Configf builds a Configuration error for op.
func Configf(op, format string, args ...any) error {
	return &Error{Kind: Configuration, Op: op, Message: fmt.Sprintf(format, args...)}
}

// ConfigWrap classifies cause as a Configuration error for op.
func ConfigWrap(op string, cause error) error {
	return &Error{Kind: Configuration, Op: op, Cause: cause}
}

// ResourceExceededf builds a ResourceExceeded error for op.
func ResourceExceededf(op, format string, args ...any) error {
	return &Error{Kind: ResourceExceeded, Op: op, Message: fmt.Sprintf(format, args...)}
}

// ExecutionWrap wraps cause as an Execution error for op, preserving the cause.
func ExecutionWrap(op string, cause error) error {
	return &Error{Kind: Execution, Op: op, Cause: cause}
}

// Cancelled converts a context error into ErrCancelled joined with the original
// cause, so errors.Is matches both ErrCancelled and context.Canceled/DeadlineExceeded.
func Cancelled(cause error) error {
	if cause == nil {
		cause = context.Canceled
	}

	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}

// IsCancelled reports whether err is a cancellation outcome.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
