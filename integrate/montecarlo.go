// SPDX-License-Identifier: MIT
// Package integrate - Monte Carlo area/volume of a union of shapes.

package integrate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvnum/geometry"
)

// MonteCarlo estimates the measure (area in 2D, volume in 3D) of the union
// of shapes.
// Implementation:
//   - Stage 1: validate the set (ErrNoShapes, ErrNilShape, shape Validate)
//     and join the bounding boxes with geometry.UnionBoxes.
//   - Stage 2: per iteration draw Points uniform points in the union box and
//     count those inside any shape, stopping at the first shape that claims
//     the point.
//   - Stage 3: estimate_k = inside/Points × box measure; return the mean of
//     the Iterations estimates.
//
// Behavior highlights:
//   - The box measure is the product of all k extents, so 3D sets yield
//     volumes.
//   - Same options (seed or injected RNG state) ⇒ identical result.
//
// Errors:
//   - ErrNoShapes, ErrNilShape, geometry.ErrInvalidShape,
//     geometry.ErrDimensionMismatch (mixed 2D and 3D shapes).
//
// Complexity:
//   - Time O(Iterations · Points · len(shapes)), Space O(k).
func MonteCarlo(shapes []geometry.Shape, opts ...MonteCarloOption) (float64, error) {
	if len(shapes) == 0 {
		return 0, integrateErrorf(opMonteCarlo, ErrNoShapes)
	}
	boxes := make([]geometry.BoundingBox, len(shapes))
	for i, s := range shapes {
		if s == nil {
			return 0, integrateErrorf(opMonteCarlo, fmt.Errorf("shape %d: %w", i, ErrNilShape))
		}
		if v, ok := s.(geometry.Validator); ok {
			if err := v.Validate(); err != nil {
				return 0, integrateErrorf(opMonteCarlo, fmt.Errorf("shape %d: %w", i, err))
			}
		}
		boxes[i] = s.BoundingBox()
	}
	box, err := geometry.UnionBoxes(boxes...)
	if err != nil {
		return 0, integrateErrorf(opMonteCarlo, err)
	}

	o := buildMonteCarloOptions(opts)
	measure := box.Measure()
	point := make([]float64, box.Dim())
	debug := o.Logger.Enabled(context.Background(), slog.LevelDebug)

	var (
		total         float64
		inside, p, it int
	)
	for it = 0; it < o.Iterations; it++ {
		inside = 0
		for p = 0; p < o.Points; p++ {
			if err = box.FillRandom(o.RNG, point); err != nil {
				return 0, integrateErrorf(opMonteCarlo, err)
			}
			if insideAny(shapes, point) {
				inside++
			}
		}
		estimate := float64(inside) / float64(o.Points) * measure
		total += estimate
		if debug {
			o.Logger.Debug("monte carlo iteration",
				slog.Int("iteration", it),
				slog.Int("inside", inside),
				slog.Int("points", o.Points),
				slog.Float64("estimate", estimate))
		}
	}

	return total / float64(o.Iterations), nil
}

func insideAny(shapes []geometry.Shape, point []float64) bool {
	for _, s := range shapes {
		if s.IsInside(point) {
			return true
		}
	}

	return false
}
