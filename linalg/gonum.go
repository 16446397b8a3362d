// SPDX-License-Identifier: MIT
// Package linalg: bridges to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Matrix to gonum factorizations (QR, SVD) without exposing the
//     internal buffer.
//   - Import gonum results back under the finite-only policy.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxGonum     = "Gonum"
	ctxFromGonum = "FromGonum"
)

// Gonum returns a *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func (m *Matrix) Gonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// GonumVec returns a *mat.VecDense holding a copy of v.
// Errors: ErrInvalidDimensions for an empty vector (gonum rejects len 0).
func (v *Vector) GonumVec() (*mat.VecDense, error) {
	if len(v.comps) == 0 {
		return nil, linalgErrorf(ctxGonum, ErrInvalidDimensions)
	}

	return mat.NewVecDense(len(v.comps), v.Components()), nil
}

// FromGonum copies any gonum matrix into a new Matrix.
// Errors: ErrNilOperand, ErrInvalidDimensions, ErrNaNInf.
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, linalgErrorf(ctxFromGonum, ErrNilOperand)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, linalgErrorf(ctxFromGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = src.At(i, j)
		}
	}
	res, err := fromRaw(r, c, buf)
	if err != nil {
		return nil, linalgErrorf(ctxFromGonum, fmt.Errorf("source %dx%d: %w", r, c, err))
	}

	return res, nil
}
