// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage (row-major) & read-only accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee immutability: no exported method writes into an existing Matrix.
//     Every transformation allocates a fresh result.
//   - Enforce the finite-only numeric policy once, at construction.
//
// AI-Hints:
//   - Kernels in impl_*.go operate on the flat data slice directly.
//   - Use RowSlices/Columns when a [][]float64 view is required; both copy.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) validate+copy; At: O(1); RowSlices/Columns: O(r*c).

package linalg

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "NewMatrix"
	ctxAt      = "At"
	ctxZeros   = "Zeros"
	ctxEye     = "Identity"
	ctxRandom  = "Random"
	ctxFromRaw = "fromRaw"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable rectangular grid of finite float64 values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Matrix may be shared freely between goroutines: no method mutates it.
type Matrix struct {
	r, c int
	data []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix builds a Matrix from a slice of equal-length rows.
// MAIN DESCRIPTION:
//   - Public constructor that validates shape and numeric policy, then copies.
//
// Implementation:
//   - Stage 1: reject empty input or empty first row (ErrInvalidDimensions).
//   - Stage 2: reject rows of unequal length (ErrRaggedRows).
//   - Stage 3: reject NaN/±Inf entries (ErrNaNInf).
//   - Stage 4: copy into a fresh flat buffer (caller's rows stay independent).
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows, ErrNaNInf; all match ErrDimension.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, linalgErrorf(ctxNew, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, linalgErrorf(ctxNew, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
		for j = 0; j < c; j++ {
			if !isFinite(rows[i][j]) {
				return nil, linalgErrorf(ctxNew, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
		data = append(data, rows[i]...)
	}

	return &Matrix{r: r, c: c, data: data}, nil
}

// MustMatrix is NewMatrix that panics on error. Intended for literals in
// tests and examples where the shape is known to be valid.
func MustMatrix(rows [][]float64) *Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// fromRaw adopts buf (len r*c) without copying. Kernels that produced buf
// themselves use it to skip a redundant copy; finiteness is re-checked so
// overflow inside a kernel cannot smuggle Inf/NaN into a Matrix.
func fromRaw(r, c int, buf []float64) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, linalgErrorf(ctxFromRaw, ErrInvalidDimensions)
	}
	for idx, v := range buf {
		if !isFinite(v) {
			return nil, linalgErrorf(ctxFromRaw, fmt.Errorf("(%d,%d): %w", idx/c, idx%c, ErrNaNInf))
		}
	}

	return &Matrix{r: r, c: c, data: buf}, nil
}

// Zeros returns an r×c matrix filled with zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, linalgErrorf(ctxZeros, ErrInvalidDimensions)
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns I_n.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, linalgErrorf(ctxEye, ErrInvalidDimensions)
	}
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1.0
	}

	return &Matrix{r: n, c: n, data: buf}, nil
}

// Random returns an r×c matrix with entries drawn uniformly from [min, max).
// The rng is injected; pass probability.RNGFromSeed(seed) for determinism.
func Random(rows, cols int, min, max float64, rng *rand.Rand) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, linalgErrorf(ctxRandom, ErrInvalidDimensions)
	}
	if rng == nil {
		return nil, linalgErrorf(ctxRandom, ErrNilOperand)
	}
	buf := make([]float64, rows*cols)
	for idx := range buf {
		buf[idx] = rng.Float64()*(max-min) + min
	}

	return fromRaw(rows, cols, buf)
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// EqualSize reports whether m and other have the same shape.
func (m *Matrix) EqualSize(other *Matrix) bool {
	return other != nil && m.r == other.r && m.c == other.c
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// RowSlices returns a deep copy of the rows.
func (m *Matrix) RowSlices() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Columns returns a deep copy of the columns (the rows of mᵀ).
func (m *Matrix) Columns() [][]float64 {
	out := make([][]float64, m.c)
	var i, j int
	for j = 0; j < m.c; j++ {
		col := make([]float64, m.r)
		for i = 0; i < m.r; i++ {
			col[i] = m.data[i*m.c+j]
		}
		out[j] = col
	}

	return out
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
