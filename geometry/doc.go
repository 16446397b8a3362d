// SPDX-License-Identifier: MIT

// Package geometry provides the shape capability consumed by Monte Carlo
// integration together with a few planar helpers.
//
// The geometry package provides:
//
//   - Shape: BoundingBox() plus IsInside(point). Rectangle, Circle,
//     RectangularPrism and Sphere implement it; any caller type may too.
//   - BoundingBox with Measure, Contains, uniform sampling and UnionBoxes.
//   - LineXAxisIntersection, used by stretch decomposition to locate sign
//     changes.
//   - Point2D and Line2D (through two points or slope/intercept, y(x),
//     parallels and intersections).
package geometry
