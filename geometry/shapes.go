// SPDX-License-Identifier: MIT
// Package geometry - primitive shapes for Monte Carlo estimation.
//
// Membership policy:
//   - Rectangle and RectangularPrism are closed (boundary points are inside).
//   - Circle and Sphere are open (strict inequality on the squared radius).
//   - A point whose dimension differs from the shape's is never inside.

package geometry

import (
	"fmt"
	"math"
)

// Shape is anything that can bound itself and classify points.
type Shape interface {
	BoundingBox() BoundingBox
	IsInside(point []float64) bool
}

// Validator is implemented by shapes that can check their own parameters.
type Validator interface {
	Validate() error
}

var (
	_ Shape = Rectangle{}
	_ Shape = Circle{}
	_ Shape = RectangularPrism{}
	_ Shape = Sphere{}

	_ Validator = Rectangle{}
	_ Validator = Circle{}
	_ Validator = RectangularPrism{}
	_ Validator = Sphere{}
)

// Rectangle is an axis-aligned 2D rectangle.
type Rectangle struct {
	Center        [2]float64
	Width, Height float64
}

// BoundingBox returns the rectangle itself.
func (r Rectangle) BoundingBox() BoundingBox {
	return BoundingBox{
		Min: []float64{r.Center[0] - r.Width/2, r.Center[1] - r.Height/2},
		Max: []float64{r.Center[0] + r.Width/2, r.Center[1] + r.Height/2},
	}
}

// IsInside reports whether point lies in the closed rectangle.
func (r Rectangle) IsInside(point []float64) bool { return r.BoundingBox().Contains(point) }

// Validate checks a finite center and positive sizes.
func (r Rectangle) Validate() error {
	return validateShape("Rectangle", r.Center[:], r.Width, r.Height)
}

// Circle is an open disc.
type Circle struct {
	Center [2]float64
	Radius float64
}

// BoundingBox returns the square circumscribing the disc.
func (c Circle) BoundingBox() BoundingBox {
	return BoundingBox{
		Min: []float64{c.Center[0] - c.Radius, c.Center[1] - c.Radius},
		Max: []float64{c.Center[0] + c.Radius, c.Center[1] + c.Radius},
	}
}

// IsInside reports |point - Center| < Radius.
func (c Circle) IsInside(point []float64) bool {
	return len(point) == 2 && squaredDistance(point, c.Center[:]) < c.Radius*c.Radius
}

// Validate checks a finite center and a positive radius.
func (c Circle) Validate() error { return validateShape("Circle", c.Center[:], c.Radius) }

// RectangularPrism is an axis-aligned 3D box.
type RectangularPrism struct {
	Center               [3]float64
	Width, Height, Depth float64
}

// BoundingBox returns the prism itself.
func (p RectangularPrism) BoundingBox() BoundingBox {
	return BoundingBox{
		Min: []float64{p.Center[0] - p.Width/2, p.Center[1] - p.Height/2, p.Center[2] - p.Depth/2},
		Max: []float64{p.Center[0] + p.Width/2, p.Center[1] + p.Height/2, p.Center[2] + p.Depth/2},
	}
}

// IsInside reports whether point lies in the closed prism.
func (p RectangularPrism) IsInside(point []float64) bool { return p.BoundingBox().Contains(point) }

// Validate checks a finite center and positive sizes.
func (p RectangularPrism) Validate() error {
	return validateShape("RectangularPrism", p.Center[:], p.Width, p.Height, p.Depth)
}

// Sphere is an open ball.
type Sphere struct {
	Center [3]float64
	Radius float64
}

// BoundingBox returns the cube circumscribing the ball.
func (s Sphere) BoundingBox() BoundingBox {
	return BoundingBox{
		Min: []float64{s.Center[0] - s.Radius, s.Center[1] - s.Radius, s.Center[2] - s.Radius},
		Max: []float64{s.Center[0] + s.Radius, s.Center[1] + s.Radius, s.Center[2] + s.Radius},
	}
}

// IsInside reports |point - Center| < Radius.
func (s Sphere) IsInside(point []float64) bool {
	return len(point) == 3 && squaredDistance(point, s.Center[:]) < s.Radius*s.Radius
}

// Validate checks a finite center and a positive radius.
func (s Sphere) Validate() error { return validateShape("Sphere", s.Center[:], s.Radius) }

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

func validateShape(name string, center []float64, sizes ...float64) error {
	for i, c := range center {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%s: center[%d]=%v: %w", name, i, c, ErrInvalidShape)
		}
	}
	for _, s := range sizes {
		if !(s > 0) || math.IsInf(s, 1) {
			return fmt.Errorf("%s: size %v must be positive and finite: %w", name, s, ErrInvalidShape)
		}
	}

	return nil
}
