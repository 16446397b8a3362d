// SPDX-License-Identifier: MIT
// Package integrate - decomposition of a sampled distribution into
// constant-sign stretches.

package integrate

import (
	"fmt"

	"github.com/katalvlaran/lvnum/geometry"
)

// Stretch is a maximal run of a distribution with one sign.
type Stretch struct {
	Start     float64 `yaml:"start"`     // path coordinate where the stretch begins
	End       float64 `yaml:"end"`       // path coordinate where it ends
	Resultant float64 `yaml:"resultant"` // ∫ values d(path) over the stretch
	Centroid  float64 `yaml:"centroid"`  // moment/resultant, 0 when the resultant is 0
}

// span addresses samples lo..hi of the caller's arrays, optionally preceded
// by an interpolated zero at head and followed by one at tail.
type span struct {
	lo, hi           int
	head, tail       float64
	hasHead, hasTail bool
}

// integrate walks head, samples lo..hi, tail as one polyline.
func (s span) integrate(path, values []float64) (force, moment float64) {
	var (
		px, pf float64
		have   bool
	)
	visit := func(x, f float64) {
		if have {
			force += segmentForce(px, x, pf, f)
			moment += segmentMoment(px, x, pf, f)
		}
		px, pf, have = x, f, true
	}
	if s.hasHead {
		visit(s.head, 0)
	}
	for k := s.lo; k <= s.hi; k++ {
		visit(path[k], values[k])
	}
	if s.hasTail {
		visit(s.tail, 0)
	}

	return force, moment
}

// String renders a Stretch for logs.
func (s Stretch) String() string {
	return fmt.Sprintf("[%g, %g] resultant=%g centroid=%g", s.Start, s.End, s.Resultant, s.Centroid)
}

func (s span) stretch(path, values []float64) Stretch {
	force, moment := s.integrate(path, values)
	st := Stretch{Start: path[s.lo], End: path[s.hi], Resultant: force}
	if s.hasHead {
		st.Start = s.head
	}
	if s.hasTail {
		st.End = s.tail
	}
	if force != 0 {
		st.Centroid = moment / force
	}

	return st
}

// strictSignChange reports a < 0 < b or b < 0 < a. Comparing signs rather
// than the product avoids underflow to zero on tiny magnitudes.
func strictSignChange(a, b float64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}

// ResultantStretches splits values sampled along path into constant-sign
// stretches and integrates each one.
// MAIN DESCRIPTION:
//   - A stretch ends where the distribution is exactly zero at a sample, or
//     where it changes sign between two samples; in that case the crossing
//     point is interpolated linearly and shared by both neighbours.
//
// Implementation:
//   - Stage 1: validate lengths (ErrLengthMismatch) and n >= 2 (ErrPathTooShort).
//   - Stage 2: scan i = 1..n-1 keeping one open span:
//   - values[i] == 0: close the span at sample i; the next opens at i.
//   - strict sign change in (i-1, i): xz = geometry.LineXAxisIntersection;
//     close the span at i-1 with tail xz; the next opens at i with head xz.
//   - at i == n-1, close the open span unless the exact-zero branch just did.
//   - Stage 3: each span yields force (resultant) and moment in one pass.
//
// Behavior highlights:
//   - Stretches tile [path[0], path[n-1]] in order without gaps.
//   - A trailing exact zero does not produce a degenerate one-point stretch.
//   - Spans are index ranges; the input arrays are neither copied nor modified.
//   - A single stretch over the whole path yields exactly TrapezoidalForce and
//     TrapezoidalMoment(…, 0) / TrapezoidalForce.
//
// Inputs:
//   - path: ascending coordinates; values: distribution at each coordinate.
//
// Errors:
//   - ErrPathTooShort, ErrLengthMismatch.
//
// Complexity:
//   - Time O(n), Space O(number of stretches).
func ResultantStretches(path, values []float64) ([]Stretch, error) {
	if len(path) != len(values) {
		return nil, integrateErrorf(opStretches, fmt.Errorf("len(path)=%d, len(values)=%d: %w", len(path), len(values), ErrLengthMismatch))
	}
	n := len(path)
	if n < 2 {
		return nil, integrateErrorf(opStretches, ErrPathTooShort)
	}

	var (
		out  []Stretch
		open = span{lo: 0}
		last = n - 1
		xz   float64
		err  error
	)
	for i := 1; i <= last; i++ {
		switch {
		case values[i] == 0:
			open.hi = i
			out = append(out, open.stretch(path, values))
			open = span{lo: i}
			if i == last {
				return out, nil
			}
			continue

		case strictSignChange(values[i-1], values[i]):
			xz, err = geometry.LineXAxisIntersection(path[i-1], values[i-1], path[i], values[i])
			if err != nil {
				return nil, integrateErrorf(opStretches, err)
			}
			open.hi = i - 1
			open.tail, open.hasTail = xz, true
			out = append(out, open.stretch(path, values))
			open = span{lo: i, head: xz, hasHead: true}
		}

		if i == last {
			open.hi = last
			out = append(out, open.stretch(path, values))
		}
	}

	return out, nil
}
