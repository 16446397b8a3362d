// SPDX-License-Identifier: MIT
// Package geometry: sentinel error set.

package geometry

import "errors"

var (
	// ErrParallelLine indicates a line parallel to the x-axis where a
	// crossing was requested.
	ErrParallelLine = errors.New("geometry: the line is parallel to the x-axis")

	// ErrVerticalLine indicates y(x) was requested on a vertical line.
	ErrVerticalLine = errors.New("geometry: vertical line")

	// ErrDegenerateLine indicates a line defined by two identical points.
	ErrDegenerateLine = errors.New("geometry: line needs two distinct points")

	// ErrDimensionMismatch indicates boxes or points of different dimension.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrNoBoxes indicates a union of zero bounding boxes.
	ErrNoBoxes = errors.New("geometry: no bounding boxes")

	// ErrInvalidShape indicates a non-finite or non-positive size or center.
	ErrInvalidShape = errors.New("geometry: invalid shape")
)
