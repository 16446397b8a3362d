// SPDX-License-Identifier: MIT
// Package linalg: Gauss-Jordan inversion and linear solves.

package linalg

// ZeroPivot is the sentinel for detecting a zero pivot in Gauss-Jordan.
const ZeroPivot = 0.0

// Inverse computes m⁻¹ by Gauss-Jordan elimination with row pivoting.
// MAIN DESCRIPTION:
//   - Reduce a working copy C of m to I while replaying every row operation
//     on an identity accumulator, which ends up holding m⁻¹.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into C; build I.
//   - Stage 2: for each pivot column i:
//   - if C[i,i] == 0, swap row i with the first row below it whose entry in
//     column i is non-zero (in both C and I); none ⇒ ErrSingular.
//   - scale row i by 1/C[i,i] so the pivot becomes 1.
//   - for every other row ii, subtract C[ii,i] × row i.
//
// Behavior highlights:
//   - Pivoting is triggered only by an exact zero; tiny pivots are accepted
//     and ill-conditioning surfaces as large entries, not as an error.
//   - Input m is read-only; the result is a fresh Matrix.
//
// Errors:
//   - ErrNilOperand, ErrNonSquare, ErrSingular.
//   - ErrNaNInf when elimination overflows.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	n := m.r
	C := make([]float64, n*n)
	copy(C, m.data)
	I := make([]float64, n*n)
	for i := 0; i < n; i++ {
		I[i*n+i] = 1.0
	}

	var (
		i, ii, j int
		e        float64
		rowI     int // offset of pivot row
		rowII    int // offset of the row being updated
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		e = C[rowI+i]

		// Exact zero on the diagonal: look downward for a usable row.
		if e == ZeroPivot {
			for ii = i + 1; ii < n; ii++ {
				if C[ii*n+i] != ZeroPivot {
					swapRows(C, n, i, ii)
					swapRows(I, n, i, ii)
					break
				}
			}
			e = C[rowI+i]
			if e == ZeroPivot {
				return nil, linalgErrorf(opInverse, ErrSingular)
			}
		}

		// Scale the pivot row so the diagonal holds 1.
		for j = 0; j < n; j++ {
			C[rowI+j] /= e
			I[rowI+j] /= e
		}

		// Eliminate column i from every other row.
		for ii = 0; ii < n; ii++ {
			if ii == i {
				continue
			}
			rowII = ii * n
			e = C[rowII+i]
			for j = 0; j < n; j++ {
				C[rowII+j] -= e * C[rowI+j]
				I[rowII+j] -= e * I[rowI+j]
			}
		}
	}

	res, err := fromRaw(n, n, I)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}

	return res, nil
}

// swapRows exchanges rows a and b of an n-column flat buffer in place.
func swapRows(buf []float64, n, a, b int) {
	ra, rb := a*n, b*n
	for j := 0; j < n; j++ {
		buf[ra+j], buf[rb+j] = buf[rb+j], buf[ra+j]
	}
}

// Solve returns x = m⁻¹·b.
// Errors: those of Inverse, plus ErrDimensionMismatch when b.Dim() != m.Cols().
func (m *Matrix) Solve(b *Vector) (*Vector, error) {
	if b == nil {
		return nil, linalgErrorf(opSolve, ErrNilOperand)
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	x, err := b.Transform(inv)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	return x, nil
}
