// SPDX-License-Identifier: MIT
// Package linalg: immutable fixed-length vectors.

package linalg

import (
	"fmt"
	"math"
	"strings"
)

const ctxNewVector = "NewVector"

// Vector is an immutable ordered sequence of finite components.
type Vector struct {
	comps []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector copies components into a new Vector.
// Errors: ErrNaNInf (matches ErrDimension) on a non-finite component.
func NewVector(components ...float64) (*Vector, error) {
	for i, v := range components {
		if !isFinite(v) {
			return nil, linalgErrorf(ctxNewVector, fmt.Errorf("component %d: %w", i, ErrNaNInf))
		}
	}
	cp := make([]float64, len(components))
	copy(cp, components)

	return &Vector{comps: cp}, nil
}

// MustVector is NewVector that panics on error.
func MustVector(components ...float64) *Vector {
	v, err := NewVector(components...)
	if err != nil {
		panic(err)
	}

	return v
}

// Dim returns the number of components.
func (v *Vector) Dim() int { return len(v.comps) }

// Components returns a copy of the components.
func (v *Vector) Components() []float64 {
	out := make([]float64, len(v.comps))
	copy(out, v.comps)

	return out
}

// At returns component i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.comps) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.comps[i], nil
}

// Add returns v + w. Errors: ErrDimensionMismatch.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return nil, linalgErrorf(opAdd, err)
	}
	out := make([]float64, len(v.comps))
	for i := range out {
		out[i] = v.comps[i] + w.comps[i]
	}

	return vectorFromRaw(opAdd, out)
}

// Sub returns v - w. Errors: ErrDimensionMismatch.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return nil, linalgErrorf(opSub, err)
	}
	out := make([]float64, len(v.comps))
	for i := range out {
		out[i] = v.comps[i] - w.comps[i]
	}

	return vectorFromRaw(opSub, out)
}

// Scale returns alpha*v.
func (v *Vector) Scale(alpha float64) (*Vector, error) {
	out := make([]float64, len(v.comps))
	for i, c := range v.comps {
		out[i] = c * alpha
	}

	return vectorFromRaw(opScale, out)
}

// Length returns the Euclidean norm.
func (v *Vector) Length() float64 {
	sum := ZeroSum
	for _, c := range v.comps {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// Dot returns v·w. Errors: ErrDimensionMismatch.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return 0, linalgErrorf("Dot", err)
	}
	sum := ZeroSum
	for i, c := range w.comps {
		sum += v.comps[i] * c
	}

	return sum, nil
}

// Normalize returns v/|v|. A zero vector yields ErrNaNInf.
func (v *Vector) Normalize() (*Vector, error) { return v.Scale(1 / v.Length()) }

// NormalizedDot returns the dot product of the two unit vectors, i.e. the
// cosine of the angle between v and w.
func (v *Vector) NormalizedDot(w *Vector) (float64, error) {
	if err := ValidateSameDim(v, w); err != nil {
		return 0, linalgErrorf("NormalizedDot", err)
	}
	a, err := v.Normalize()
	if err != nil {
		return 0, err
	}
	b, err := w.Normalize()
	if err != nil {
		return 0, err
	}

	return a.Dot(b)
}

// HasSameDirection reports cos(v,w) ≈ 1 within eps.
func (v *Vector) HasSameDirection(w *Vector, eps float64) (bool, error) {
	return v.cosineIs(w, 1, eps)
}

// HasOppositeDirection reports cos(v,w) ≈ -1 within eps.
func (v *Vector) HasOppositeDirection(w *Vector, eps float64) (bool, error) {
	return v.cosineIs(w, -1, eps)
}

// IsPerpendicular reports cos(v,w) ≈ 0 within eps.
func (v *Vector) IsPerpendicular(w *Vector, eps float64) (bool, error) {
	return v.cosineIs(w, 0, eps)
}

func (v *Vector) cosineIs(w *Vector, want, eps float64) (bool, error) {
	cos, err := v.NormalizedDot(w)
	if err != nil {
		return false, err
	}

	return math.Abs(cos-want) < eps, nil
}

// AngleBetween returns the angle between v and w in degrees.
func (v *Vector) AngleBetween(w *Vector) (float64, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return 0, err
	}

	// rounding can push |cos| just past 1
	cos := math.Max(-1, math.Min(1, dot/(v.Length()*w.Length())))

	return math.Acos(cos) * 180 / math.Pi, nil
}

// ProjectOn returns the projection of v onto w.
func (v *Vector) ProjectOn(w *Vector) (*Vector, error) {
	unit, err := w.Normalize()
	if err != nil {
		return nil, err
	}
	dot, err := v.Dot(unit)
	if err != nil {
		return nil, err
	}

	return unit.Scale(dot)
}

// WithLength returns a vector parallel to v with the given length.
func (v *Vector) WithLength(length float64) (*Vector, error) {
	unit, err := v.Normalize()
	if err != nil {
		return nil, err
	}

	return unit.Scale(length)
}

// Equal reports equal dimension and |v[i]-w[i]| < eps for all i.
func (v *Vector) Equal(w *Vector, eps float64) bool {
	if w == nil || len(v.comps) != len(w.comps) {
		return false
	}
	for i, c := range w.comps {
		if math.Abs(c-v.comps[i]) >= eps {
			return false
		}
	}

	return true
}

// Transform applies the linear map m to v: out[i] = Σ_j m[i,j]·v[j].
// Errors: ErrDimensionMismatch unless m.Cols() == v.Dim().
func (v *Vector) Transform(m *Matrix) (*Vector, error) {
	if m == nil {
		return nil, linalgErrorf(opTransform, ErrNilOperand)
	}
	out, err := m.MulVec(v.comps)
	if err != nil {
		return nil, err
	}

	return vectorFromRaw(opTransform, out)
}

// String renders "(c0, c1, ...)".
func (v *Vector) String() string {
	parts := make([]string, len(v.comps))
	for i, c := range v.comps {
		parts[i] = fmt.Sprintf("%g", c)
	}

	return "(" + strings.Join(parts, _fmtSep) + ")"
}

func vectorFromRaw(tag string, buf []float64) (*Vector, error) {
	for i, c := range buf {
		if !isFinite(c) {
			return nil, linalgErrorf(tag, fmt.Errorf("component %d: %w", i, ErrNaNInf))
		}
	}

	return &Vector{comps: buf}, nil
}
