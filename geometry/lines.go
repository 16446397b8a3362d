// SPDX-License-Identifier: MIT
// Package geometry - points and lines in the plane.

package geometry

import (
	"fmt"
	"math"
)

// LineXAxisIntersection returns the x where the line through (x1, y1) and
// (x2, y2) crosses y = 0: x1 - (x2-x1)/(y2-y1)·y1.
// Errors: ErrParallelLine when y1 == y2.
func LineXAxisIntersection(x1, y1, x2, y2 float64) (float64, error) {
	if y1-y2 == 0 {
		return 0, fmt.Errorf("LineXAxisIntersection: y1=y2=%g: %w", y1, ErrParallelLine)
	}

	return x1 - (x2-x1)/(y2-y1)*y1, nil
}

// Point2D is a point in the plane.
type Point2D struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to q.
func (p Point2D) DistanceTo(q Point2D) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// VectorTo returns q - p.
func (p Point2D) VectorTo(q Point2D) [2]float64 { return [2]float64{q.X - p.X, q.Y - p.Y} }

// UnitVectorTo returns (q - p)/|q - p|; NaN components when p == q.
func (p Point2D) UnitVectorTo(q Point2D) [2]float64 {
	v := p.VectorTo(q)
	mod := math.Hypot(v[0], v[1])

	return [2]float64{v[0] / mod, v[1] / mod}
}

// Line2D is an infinite line y = Slope·x + Intercept. A vertical line has
// Slope = +Inf, Intercept = NaN and passes through x = X0.
// Direction is a unit vector along the line.
type Line2D struct {
	Slope     float64
	Intercept float64
	X0        float64
	Direction [2]float64
}

// NewLineThrough builds the line through p0 and p1.
// Errors: ErrDegenerateLine when p0 == p1.
func NewLineThrough(p0, p1 Point2D) (Line2D, error) {
	if p0 == p1 {
		return Line2D{}, fmt.Errorf("NewLineThrough: %v: %w", p0, ErrDegenerateLine)
	}
	dx := p1.X - p0.X
	if dx == 0 {
		return verticalLine(p0.X, p1.Y-p0.Y), nil
	}
	slope := (p1.Y - p0.Y) / dx

	return Line2D{
		Slope:     slope,
		Intercept: p0.Y - slope*p0.X,
		X0:        p0.X,
		Direction: p0.UnitVectorTo(p1),
	}, nil
}

// NewLineSlopeIntercept builds y = slope·x + intercept. The direction points
// toward increasing x.
func NewLineSlopeIntercept(slope, intercept float64) Line2D {
	l := Line2D{Slope: slope, Intercept: intercept}
	p0 := Point2D{X: 0, Y: intercept}
	p1 := Point2D{X: 1, Y: slope + intercept}
	l.Direction = p0.UnitVectorTo(p1)

	return l
}

// verticalLine has a unit direction along the sign of dy.
func verticalLine(x0, dy float64) Line2D {
	return Line2D{
		Slope:     math.Inf(1),
		Intercept: math.NaN(),
		X0:        x0,
		Direction: [2]float64{0, math.Copysign(1, dy)},
	}
}

// IsVertical reports an infinite slope.
func (l Line2D) IsVertical() bool { return math.IsInf(l.Slope, 0) }

// Y evaluates the line at x.
// Errors: ErrVerticalLine on a vertical line, whether or not it passes
// through x.
func (l Line2D) Y(x float64) (float64, error) {
	if l.IsVertical() {
		if l.X0 == x {
			return 0, fmt.Errorf("vertical line having infinite y values for x=%g: %w", x, ErrVerticalLine)
		}

		return 0, fmt.Errorf("vertical line not passing through x=%g: %w", x, ErrVerticalLine)
	}

	return l.Slope*x + l.Intercept, nil
}

// ParallelThrough returns the line parallel to l passing through p.
func (l Line2D) ParallelThrough(p Point2D) Line2D {
	if l.IsVertical() {
		return verticalLine(p.X, l.Direction[1])
	}

	return NewLineSlopeIntercept(l.Slope, p.Y-l.Slope*p.X)
}

// IntersectionKind classifies the result of Line2D.Intersection.
type IntersectionKind int

const (
	// NoIntersection: distinct parallel lines.
	NoIntersection IntersectionKind = iota
	// PointIntersection: a single crossing point.
	PointIntersection
	// CoincidentLines: the lines are the same set of points.
	CoincidentLines
)

// String implements fmt.Stringer.
func (k IntersectionKind) String() string {
	switch k {
	case PointIntersection:
		return "point"
	case CoincidentLines:
		return "coincident"
	default:
		return "none"
	}
}

// Intersection intersects l with o. The returned point is meaningful only
// for PointIntersection.
//
// Behavior highlights:
//   - Equal slopes: coincident when intercepts (or X0 for vertical lines)
//     are equal, otherwise no intersection. Comparison is exact.
//   - One vertical line: the crossing is at its X0.
func (l Line2D) Intersection(o Line2D) (IntersectionKind, Point2D) {
	switch {
	case l.IsVertical() && o.IsVertical():
		if l.X0 == o.X0 {
			return CoincidentLines, Point2D{}
		}
		return NoIntersection, Point2D{}
	case l.IsVertical():
		return PointIntersection, Point2D{X: l.X0, Y: o.Slope*l.X0 + o.Intercept}
	case o.IsVertical():
		return PointIntersection, Point2D{X: o.X0, Y: l.Slope*o.X0 + l.Intercept}
	case l.Slope == o.Slope:
		if l.Intercept == o.Intercept {
			return CoincidentLines, Point2D{}
		}
		return NoIntersection, Point2D{}
	}
	x := (o.Intercept - l.Intercept) / (l.Slope - o.Slope)

	return PointIntersection, Point2D{X: x, Y: l.Slope*x + l.Intercept}
}
