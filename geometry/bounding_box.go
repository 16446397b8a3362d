// SPDX-License-Identifier: MIT
// Package geometry - axis-aligned bounding boxes.
//
// A BoundingBox of dimension k holds Min[c] <= Max[c] for c in 0..k-1.
// Union, measure and uniform sampling are the only operations the Monte
// Carlo estimator needs from it.

package geometry

import (
	"fmt"
	"math"
	"math/rand"
)

// BoundingBox is the axis-aligned box [Min, Max].
type BoundingBox struct {
	Min []float64
	Max []float64
}

// Dim returns the box dimension.
func (b BoundingBox) Dim() int { return len(b.Min) }

// Measure returns the product of the extents: length, area or volume
// depending on Dim.
func (b BoundingBox) Measure() float64 {
	m := 1.0
	for c := range b.Min {
		m *= b.Max[c] - b.Min[c]
	}

	return m
}

// Area is Measure restricted to 2D boxes.
func (b BoundingBox) Area() (float64, error) {
	if b.Dim() != 2 {
		return 0, fmt.Errorf("Area: dim %d: %w", b.Dim(), ErrDimensionMismatch)
	}

	return b.Measure(), nil
}

// Volume is Measure restricted to 3D boxes.
func (b BoundingBox) Volume() (float64, error) {
	if b.Dim() != 3 {
		return 0, fmt.Errorf("Volume: dim %d: %w", b.Dim(), ErrDimensionMismatch)
	}

	return b.Measure(), nil
}

// Contains reports Min[c] <= p[c] <= Max[c] for every component.
func (b BoundingBox) Contains(p []float64) bool {
	if len(p) != len(b.Min) {
		return false
	}
	for c, v := range p {
		if v < b.Min[c] || v > b.Max[c] {
			return false
		}
	}

	return true
}

// RandomPoint draws a point uniformly inside the box, one rng.Float64 per
// component in component order.
func (b BoundingBox) RandomPoint(rng *rand.Rand) []float64 {
	p := make([]float64, len(b.Min))
	b.fillRandom(rng, p)

	return p
}

// fillRandom is RandomPoint into a caller buffer of length Dim.
func (b BoundingBox) fillRandom(rng *rand.Rand, dst []float64) {
	for c := range dst {
		dst[c] = rng.Float64()*(b.Max[c]-b.Min[c]) + b.Min[c]
	}
}

// FillRandom is RandomPoint without the allocation; dst must have length Dim.
func (b BoundingBox) FillRandom(rng *rand.Rand, dst []float64) error {
	if len(dst) != len(b.Min) {
		return fmt.Errorf("FillRandom: len(dst)=%d, dim=%d: %w", len(dst), len(b.Min), ErrDimensionMismatch)
	}
	b.fillRandom(rng, dst)

	return nil
}

// UnionBoxes returns the smallest box enclosing every input box
// (component-wise min of Min, max of Max).
//
// Errors: ErrNoBoxes for no input, ErrDimensionMismatch for mixed dimensions.
func UnionBoxes(boxes ...BoundingBox) (BoundingBox, error) {
	if len(boxes) == 0 {
		return BoundingBox{}, fmt.Errorf("UnionBoxes: %w", ErrNoBoxes)
	}
	k := boxes[0].Dim()
	out := BoundingBox{Min: make([]float64, k), Max: make([]float64, k)}
	for c := 0; c < k; c++ {
		out.Min[c] = math.Inf(1)
		out.Max[c] = math.Inf(-1)
	}
	for i, b := range boxes {
		if b.Dim() != k || len(b.Max) != k {
			return BoundingBox{}, fmt.Errorf("UnionBoxes: box %d has dim %d, want %d: %w", i, b.Dim(), k, ErrDimensionMismatch)
		}
		for c := 0; c < k; c++ {
			out.Min[c] = math.Min(out.Min[c], b.Min[c])
			out.Max[c] = math.Max(out.Max[c], b.Max[c])
		}
	}

	return out, nil
}
