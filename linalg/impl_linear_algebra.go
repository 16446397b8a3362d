// SPDX-License-Identifier: MIT
// Package linalg provides element-wise addition, subtraction, scaling,
// multiplication and transposition on immutable matrices. All kernels
// perform fail-fast validation and allocate a fresh result; receivers and
// arguments are never mutated.

package linalg

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opMap         = "Map"
	opDeterminant = "Determinant"
	opSubmatrix   = "SubmatrixRemoving"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opTransform   = "Transform"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 into a fresh buffer.
//
// Errors:
//   - ErrNilOperand, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, linalgErrorf(opTag, err)
	}
	buf := make([]float64, len(a.data))
	for idx := range buf { // deterministic 0..n-1
		buf[idx] = a.data[idx] + sign*b.data[idx]
	}
	res, err := fromRaw(a.r, a.c, buf)
	if err != nil {
		return nil, linalgErrorf(opTag, err)
	}

	return res, nil
}

// Add returns m + other (element-wise).
// Errors: ErrDimensionMismatch when shapes differ.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return addSub(m, other, +1, opAdd) }

// Sub returns m - other (element-wise).
// Errors: ErrDimensionMismatch when shapes differ.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return addSub(m, other, -1, opSub) }

// Scale returns alpha*m.
func (m *Matrix) Scale(alpha float64) (*Matrix, error) {
	buf := make([]float64, len(m.data))
	for idx, v := range m.data {
		buf[idx] = v * alpha
	}
	res, err := fromRaw(m.r, m.c, buf)
	if err != nil {
		return nil, linalgErrorf(opScale, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = m × other.
// Implementation:
//   - Stage 1: validate inner dimensions (m.Cols == other.Rows).
//   - Stage 2: i→k→j with row-major strides; zero entries of m are skipped.
//
// Behavior highlights:
//   - Each C[i,j] accumulates its products in ascending k, starting from
//     ZeroSum, identical to the textbook i→j→k triple loop.
//
// Errors:
//   - ErrNilOperand, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	aRows, aCols, bCols := m.r, m.c, other.c
	buf := make([]float64, aRows*bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				buf[rowOffsetR+j] += av * other.data[rowOffsetB+j]
			}
		}
	}
	res, err := fromRaw(aRows, bCols, buf)
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns mᵀ. The receiver is never mutated.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.r, m.c
	buf := make([]float64, rows*cols)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			buf[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return &Matrix{r: cols, c: rows, data: buf}
}

// Map returns a new matrix with out[i,j] = fn(m[i,j], i, j).
// Errors: ErrNaNInf if fn produces a non-finite value.
func (m *Matrix) Map(fn func(v float64, i, j int) float64) (*Matrix, error) {
	buf := make([]float64, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			buf[i*m.c+j] = fn(m.data[i*m.c+j], i, j)
		}
	}
	res, err := fromRaw(m.r, m.c, buf)
	if err != nil {
		return nil, linalgErrorf(opMap, err)
	}

	return res, nil
}

// Equal reports whether m and other have the same shape and every pair of
// entries differs by less than eps. The tolerance is explicit; there is no
// package-level epsilon.
func (m *Matrix) Equal(other *Matrix, eps float64) bool {
	if !m.EqualSize(other) {
		return false
	}
	eps = math.Abs(eps)
	for idx, v := range m.data {
		if math.Abs(v-other.data[idx]) >= eps {
			return false
		}
	}

	return true
}

// MulVec computes y = m·x for a plain slice x (len == Cols).
// The accumulation order per row matches Vector.Transform.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, linalgErrorf(opTransform, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch))
	}
	y := make([]float64, m.r)
	var i, j int
	var sum float64
	for i = 0; i < m.r; i++ {
		sum = ZeroSum
		for j = 0; j < m.c; j++ {
			sum += m.data[i*m.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
