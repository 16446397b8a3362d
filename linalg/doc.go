// SPDX-License-Identifier: MIT

// Package linalg provides small, immutable dense matrices and vectors for
// the numerical routines in lvnum.
//
// The linalg package provides:
//
//   - Matrix: row-major, finite-only, never mutated after construction.
//     Add, Sub, Scale, Mul, Transpose, Map, Determinant, Minor, Cofactor,
//     Adjugate, Inverse (Gauss-Jordan with row pivoting) and Solve.
//   - Vector: Add, Sub, Scale, Dot, Length, Normalize, angle and direction
//     predicates, projection and Transform by a Matrix.
//   - Gonum bridges (Matrix.Gonum, FromGonum) for callers that need
//     factorizations such as QR.
//
// Errors are sentinels matched with errors.Is. Every shape or finiteness
// violation also matches ErrDimension; a non-invertible input yields
// ErrSingular.
//
// Tolerances are always explicit arguments; the package keeps no global
// epsilon.
package linalg
