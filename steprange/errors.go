// SPDX-License-Identifier: MIT
// Package: lvrange/steprange
//
// errors.go — sentinel errors for the steprange package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Construction errors carry method context via %w wrapping.
//   • Errors surface at construction time, never mid-iteration.
//   • Panics are confined to nil operations passed to Build/BuildInfinite/FromCmp.

package steprange

import (
	"errors"
	"fmt"
)

// ErrInvalidEndpoint indicates that an endpoint failed the caller's validate
// operation, or that the step cannot move from start towards end in either
// sign. No sequence is returned with it.
// Usage: if errors.Is(err, ErrInvalidEndpoint) { /* reject request */ }.
var ErrInvalidEndpoint = errors.New("steprange: invalid endpoint")

// ErrUnbounded indicates that Collect was called on a sequence without an
// end bound. Use Take to read a prefix instead.
var ErrUnbounded = errors.New("steprange: sequence is unbounded")

// Method tokens used as error prefixes.
const (
	// MethodBuild prefixes errors of finite-mode constructors.
	MethodBuild = "Build"
	// MethodBuildInfinite prefixes errors of infinite-mode constructors.
	MethodBuildInfinite = "BuildInfinite"
	// MethodCollect prefixes errors of Sequence.Collect.
	MethodCollect = "Collect"
)

// rangeErrorf returns "<method>: <formatted message>: <sentinel>" wrapping
// sentinel so that errors.Is keeps working.
func rangeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
