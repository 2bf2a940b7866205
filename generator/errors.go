// SPDX-License-Identifier: MIT
// Package: sortlab/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sentinels are never formatted at definition site; context is attached
//     with %w by generatorErrorf.
//   • Generators never panic at runtime; option constructors may panic on
//     meaningless values (e.g. WithRand(nil)).

package generator

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates a requested length below zero.
// No partial sequence is ever returned alongside it.
// Usage: if errors.Is(err, ErrNegativeSize) { /* reject the request */ }.
var ErrNegativeSize = errors.New("generator: negative size")

// ErrUnknownCase indicates a case label that ParseCase does not recognise.
var ErrUnknownCase = errors.New("generator: unknown case")

// generatorErrorf wraps sentinel with a "<Method>: <message>" context prefix.
// The result satisfies errors.Is(err, sentinel).
//
// Complexity: O(len(format) + Σlen(args)).
func generatorErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
