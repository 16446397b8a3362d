// SPDX-License-Identifier: MIT

// Package rootfind locates a zero of a scalar function with Brent's method.
//
// Brent combines bisection, the secant rule and inverse quadratic
// interpolation: it keeps a bracket [b, c] around the best estimate b and
// accepts an interpolated step only while it shrinks the bracket fast
// enough, falling back to bisection otherwise.
//
// The bracket is not checked up front. When f has no sign change on
// [lower, upper] the iteration collapses onto the endpoint of smallest |f|
// and returns it; callers that need a guaranteed root should check
// f(lower)·f(upper) <= 0 themselves.
//
// Options:
//
//	– WithMaxIterations (default DefaultMaxIterations = 1000)
//
// Errors (sentinel):
//
//	– ErrNilFunction, ErrInvalidTolerance, ErrMaxIterations.
package rootfind
