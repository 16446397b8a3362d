// SPDX-License-Identifier: MIT
// Package linalg: determinant, minors, cofactors and adjugate.
//
// Laplace expansion is O(n!) and is meant for the small systems produced by
// polynomial regression (order+1 ≤ ~8). Inverse does not depend on it.

package linalg

// Determinant returns det(m).
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: closed forms for 1×1 and 2×2.
//   - Stage 3: cofactor expansion along the first row, recursing on the
//     (n-1)×(n-1) minors; signs alternate with the column index.
//
// Errors:
//   - ErrNilOperand, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, linalgErrorf(opDeterminant, err)
	}

	return determinant(m.data, m.r), nil
}

// determinant works on a flat n×n row-major buffer.
func determinant(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}
	var (
		sum   = ZeroSum
		term  float64
		col   int
		minor = make([]float64, (n-1)*(n-1))
	)
	for col = 0; col < n; col++ {
		fillMinor(minor, a, n, 0, col)
		term = a[col] * determinant(minor, n-1)
		if col%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// fillMinor writes into dst the (n-1)×(n-1) buffer obtained from a by
// deleting row skipR and column skipC.
func fillMinor(dst, a []float64, n, skipR, skipC int) {
	var i, j, k int
	for i = 0; i < n; i++ {
		if i == skipR {
			continue
		}
		for j = 0; j < n; j++ {
			if j == skipC {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}

// SubmatrixRemoving returns m without row `row` and column `col`.
// Errors: ErrOutOfRange on bad indices, ErrInvalidDimensions when the result
// would be empty (1×N or N×1 input).
func (m *Matrix) SubmatrixRemoving(row, col int) (*Matrix, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, linalgErrorf(opSubmatrix, ErrOutOfRange)
	}
	if m.r < 2 || m.c < 2 {
		return nil, linalgErrorf(opSubmatrix, ErrInvalidDimensions)
	}
	buf := make([]float64, 0, (m.r-1)*(m.c-1))
	var i, j int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j != col {
				buf = append(buf, m.data[i*m.c+j])
			}
		}
	}

	return &Matrix{r: m.r - 1, c: m.c - 1, data: buf}, nil
}

// Minor returns the (i,j) minor: the determinant of the submatrix formed by
// deleting row i and column j.
func (m *Matrix) Minor(i, j int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, linalgErrorf(opDeterminant, err)
	}
	sub, err := m.SubmatrixRemoving(i, j)
	if err != nil {
		return 0, err
	}

	return determinant(sub.data, sub.r), nil
}

// Cofactor returns (-1)^(i+j) · Minor(i, j).
func (m *Matrix) Cofactor(i, j int) (float64, error) {
	minor, err := m.Minor(i, j)
	if err != nil {
		return 0, err
	}
	if (i+j)%2 != 0 {
		return -minor, nil
	}

	return minor, nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNonSquare; ErrInvalidDimensions for 1×1 input (no minors).
func (m *Matrix) Adjugate() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, linalgErrorf(opAdjugate, err)
	}
	n := m.r
	buf := make([]float64, n*n)
	var (
		i, j int
		cof  float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if cof, err = m.Cofactor(i, j); err != nil {
				return nil, linalgErrorf(opAdjugate, err)
			}
			buf[j*n+i] = cof // transpose while writing
		}
	}
	res, err := fromRaw(n, n, buf)
	if err != nil {
		return nil, linalgErrorf(opAdjugate, err)
	}

	return res, nil
}
