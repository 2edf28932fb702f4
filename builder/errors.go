// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (method tag + parameters).
//   • Constructors never panic on user input.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeightRange indicates a weight range with min > max or a negative bound.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrConstructFailed indicates a nil constructor or a failure while
// assembling the final graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches a method tag and detail to a sentinel.
func wrapf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
