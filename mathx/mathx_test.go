// SPDX-License-Identifier: MIT
package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/mathx"
)

func TestAreEqual(t *testing.T) {
	assert.False(t, mathx.AreEqual(1, 1.00001, mathx.DefaultEpsilon))
	assert.True(t, mathx.AreEqual(1, 1.000000001, mathx.DefaultEpsilon))
	// strict: a difference equal to eps is not "equal"
	assert.False(t, mathx.AreEqual(0, 0.5, 0.5))
}

func TestRound(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     float64
		fixed    string
	}{
		{8.13, 1, 8.1, "8.1"},
		{8.13, 0, 8, "8"},
		{8.1393, mathx.DefaultDecimals, 8.14, "8.14"},
		{8.1393, 6, 8.1393, "8.139300"},
		{0, 6, 0, "0.000000"},
		{8, 2, 8, "8.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mathx.Round(tc.v, tc.decimals), "Round(%v, %d)", tc.v, tc.decimals)
		assert.Equal(t, tc.fixed, mathx.RoundToFixed(tc.v, tc.decimals), "RoundToFixed(%v, %d)", tc.v, tc.decimals)
	}
	// halves go toward +Inf
	assert.Equal(t, -2.0, mathx.Round(-2.5, 0))
	assert.Equal(t, 3.0, mathx.Round(2.5, 0))
}

func TestAngles(t *testing.T) {
	assert.Equal(t, 90.0, mathx.ToDegrees(math.Pi/2))
	assert.Equal(t, math.Pi/4, mathx.ToRadians(45))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 1.0, mathx.Sum([]float64{1, 2, 3, -5}))
	assert.Equal(t, 3.0, mathx.Sum([]float64{1, math.NaN(), 2}))
	assert.Equal(t, 0.0, mathx.Sum(nil))
}

func TestPiecewiseLinearInterpolation(t *testing.T) {
	xs := []float64{0, 1, 2, 4, 5}
	ys := []float64{0, 1, 2, 4, 6}
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"intermediate 1.5", 1.5, 1.5},
		{"intermediate 3", 3, 3},
		{"intermediate 4.5", 4.5, 5},
		{"first knot", 0, 0},
		{"last knot", 5, 6},
		{"extrapolate left", -1, -1},
		{"extrapolate right", 6, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			y, err := mathx.PiecewiseLinearInterpolation(xs, ys, tc.x)
			require.NoError(t, err)
			assert.Equal(t, tc.want, y)
		})
	}

	_, err := mathx.PiecewiseLinearInterpolation(xs, ys[:3], 1)
	require.ErrorIs(t, err, mathx.ErrLengthMismatch)
	_, err = mathx.PiecewiseLinearInterpolation([]float64{1}, []float64{1}, 1)
	require.ErrorIs(t, err, mathx.ErrTooFewPoints)
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1.0, mathx.Factorial(0))
	assert.Equal(t, 1.0, mathx.Factorial(1))
	assert.Equal(t, 120.0, mathx.Factorial(5))
	assert.Equal(t, 3628800.0, mathx.Factorial(10))
	assert.True(t, math.IsInf(mathx.Factorial(171), 1))
}
