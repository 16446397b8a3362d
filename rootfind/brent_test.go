// SPDX-License-Identifier: MIT
package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/rootfind"
)

func TestBrent(t *testing.T) {
	const tol = 1e-7
	linear := func(x float64) float64 { return x + 2 }
	shifted := func(x float64) float64 { return x + 12 }
	quadratic := func(x float64) float64 { return x*x - x - 2 }
	periodic := func(x float64) float64 { return 3 * math.Cos(x) * math.Sin(x) }

	cases := []struct {
		name         string
		f            func(float64) float64
		lower, upper float64
		want         float64
	}{
		{"x+2", linear, -10, 10, -2},
		{"x+12 without a sign change returns the nearer endpoint", shifted, -10, 10, -10},
		{"x+12 on a wider bracket", shifted, -100, 100, -12},
		{"x²-x-2 first root", quadratic, -10, 10, -1},
		{"x²-x-2 on [0,10]", quadratic, 0, 10, 2},
		{"x²-x-2 without a root returns the lower endpoint", quadratic, 5, 10, 5},
		{"3cos·sin around 0", periodic, -1, 1, 0},
		{"3cos·sin on [1,2]", periodic, 1, 2, math.Pi / 2},
		{"3cos·sin on [-π/2-0.2,-0.1]", periodic, -math.Pi/2 - 0.2, -0.1, -math.Pi / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rootfind.Brent(tc.f, tc.lower, tc.upper, tol)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestBrent_ExactRootOnEndpoint(t *testing.T) {
	got, err := rootfind.Brent(func(x float64) float64 { return x - 3 }, 0, 3, 1e-12)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestBrentWith_MaxIterations(t *testing.T) {
	f := func(x float64) float64 { return x*x - x - 2 }
	_, err := rootfind.BrentWith(f, -10, 10, 1e-12, rootfind.WithMaxIterations(3))
	require.ErrorIs(t, err, rootfind.ErrMaxIterations)

	got, err := rootfind.BrentWith(f, -10, 10, 1e-12, rootfind.WithMaxIterations(200))
	require.NoError(t, err)
	assert.InDelta(t, -1, got, 1e-10)

	assert.Panics(t, func() { rootfind.WithMaxIterations(0)(&rootfind.Options{}) })
}

func TestBrent_Errors(t *testing.T) {
	_, err := rootfind.Brent(nil, 0, 1, 1e-6)
	require.ErrorIs(t, err, rootfind.ErrNilFunction)

	f := func(x float64) float64 { return x }
	_, err = rootfind.Brent(f, -1, 1, -1)
	require.ErrorIs(t, err, rootfind.ErrInvalidTolerance)
	_, err = rootfind.Brent(f, -1, 1, math.NaN())
	require.ErrorIs(t, err, rootfind.ErrInvalidTolerance)
}
