// SPDX-License-Identifier: MIT
// Package rootfind - Brent's method.

package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxIterations bounds the number of function evaluations after the
// two initial ones.
const DefaultMaxIterations = 1000

// machineEpsilon is the spacing of float64 values around 1.
const machineEpsilon = 2.220446049250313e-16

var (
	// ErrNilFunction indicates a nil f.
	ErrNilFunction = errors.New("rootfind: nil function")

	// ErrInvalidTolerance indicates tol < 0 or NaN.
	ErrInvalidTolerance = errors.New("rootfind: tolerance must be >= 0")

	// ErrMaxIterations indicates the iteration budget ran out before the
	// bracket shrank below the tolerance.
	ErrMaxIterations = errors.New("rootfind: maximum number of iterations exceeded")
)

// Options configures BrentWith.
type Options struct {
	MaxIterations int
}

// Option represents a functional option for BrentWith.
type Option func(*Options)

// DefaultOptions returns a budget of DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// WithMaxIterations sets the iteration budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("rootfind: WithMaxIterations requires n >= 1")
		}
		o.MaxIterations = n
	}
}

// Brent returns x in [lower, upper] with f(x) ≈ 0 to within tol on x.
// It is BrentWith with default options.
func Brent(f func(float64) float64, lower, upper, tol float64) (float64, error) {
	return BrentWith(f, lower, upper, tol)
}

// BrentWith is Brent with options.
// Implementation (Forsythe–Malcolm–Moler zeroin):
//   - b is the best estimate, a the previous one, c the far side of the
//     bracket; whenever f(b) and f(c) share a sign, c is reset to a.
//   - b and c are swapped so that |f(b)| <= |f(c)|.
//   - Converged once half the bracket |c-b|/2 <= 2ε|b| + tol/2, or f(b)==0.
//   - Otherwise try secant (a == c) or inverse quadratic interpolation; keep
//     the step only if it lands inside the bracket and is less than half the
//     step before last, else bisect. Steps never fall below the tolerance.
//
// Errors: ErrNilFunction, ErrInvalidTolerance, ErrMaxIterations.
//
// Complexity: superlinear near a simple root; at most MaxIterations + 2
// evaluations of f.
func BrentWith(f func(float64) float64, lower, upper, tol float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	if !(tol >= 0) {
		return 0, fmt.Errorf("tol=%g: %w", tol, ErrInvalidTolerance)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a, b, c := lower, upper, upper
	fa, fb := f(a), f(b)
	fc := fb
	d := b - a
	e := d

	var tol1, xm, p, q, r, s float64
	for it := 0; it < o.MaxIterations; it++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 = 2*machineEpsilon*math.Abs(b) + 0.5*tol
		xm = 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s = fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r = fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}

	return b, fmt.Errorf("after %d iterations, x=%g: %w", o.MaxIterations, b, ErrMaxIterations)
}
