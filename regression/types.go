// SPDX-License-Identifier: MIT
// Package regression - model, metrics and sample types.

package regression

import "math"

// Kind names a regression model family.
type Kind string

const (
	KindLinear      Kind = "linear"
	KindQuadratic   Kind = "quadratic"
	KindCubic       Kind = "cubic"
	KindQuartic     Kind = "quartic"
	KindPolynomial  Kind = "polynomial"
	KindLogarithmic Kind = "logarithmic"
	KindExponential Kind = "exponential"
	KindPower       Kind = "power"
)

// DefaultKind is used by LeastSquares for an unrecognized Kind.
const DefaultKind = KindLinear

// Kinds lists every recognized Kind.
func Kinds() []Kind {
	return []Kind{
		KindLinear, KindQuadratic, KindCubic, KindQuartic,
		KindPolynomial, KindLogarithmic, KindExponential, KindPower,
	}
}

// Valid reports whether k is one of Kinds().
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}

	return false
}

// polynomialOrder maps the fixed-order kinds to their degree.
func (k Kind) polynomialOrder() (int, bool) {
	switch k {
	case KindLinear:
		return 1, true
	case KindQuadratic:
		return 2, true
	case KindCubic:
		return 3, true
	case KindQuartic:
		return 4, true
	}

	return 0, false
}

// Point is one (x, y) sample.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CleanPoints returns the points whose coordinates are both finite.
// The input is not modified.
func CleanPoints(data []Point) []Point {
	out := make([]Point, 0, len(data))
	for _, p := range data {
		if isFinite(p.X) && isFinite(p.Y) {
			out = append(out, p)
		}
	}

	return out
}

// Split separates points into parallel x and y slices.
func Split(data []Point) (x, y []float64) {
	x = make([]float64, len(data))
	y = make([]float64, len(data))
	for i, p := range data {
		x[i], y[i] = p.X, p.Y
	}

	return x, y
}

// Equation is the fitted model rendered as text.
type Equation struct {
	WithParameters   string `yaml:"withParameters"`
	WithCoefficients string `yaml:"withCoefficients"`
}

// Metrics are the goodness-of-fit measures of a Model on its own samples.
type Metrics struct {
	MeanAbsoluteError           float64 `yaml:"meanAbsoluteError"`
	MeanSquaredError            float64 `yaml:"meanSquaredError"`
	RootMeanSquaredError        float64 `yaml:"rootMeanSquaredError"`
	MeanAbsolutePercentageError float64 `yaml:"meanAbsolutePercentageError"`
	R2Score                     float64 `yaml:"r2score"`
	R2ScoreAdjusted             float64 `yaml:"r2scoreAdjusted"`
}

// Map returns the metrics keyed by their conventional camelCase names.
func (m Metrics) Map() map[string]float64 {
	return map[string]float64{
		"meanAbsoluteError":           m.MeanAbsoluteError,
		"meanSquaredError":            m.MeanSquaredError,
		"rootMeanSquaredError":        m.RootMeanSquaredError,
		"meanAbsolutePercentageError": m.MeanAbsolutePercentageError,
		"r2score":                     m.R2Score,
		"r2scoreAdjusted":             m.R2ScoreAdjusted,
	}
}

// Model is an immutable fitted regression.
type Model struct {
	Kind         Kind      `yaml:"kind"`
	Coefficients []float64 `yaml:"coefficients"`
	Metrics      Metrics   `yaml:"metrics"`
	Equation     Equation  `yaml:"equation"`

	predict func(x float64) float64
}

// Predict evaluates the fitted curve at x.
func (m *Model) Predict(x float64) float64 { return m.predict(x) }

// Order returns the polynomial degree, or 0 for the two-parameter kinds.
func (m *Model) Order() int {
	if m.Kind == KindLogarithmic || m.Kind == KindExponential || m.Kind == KindPower {
		return 0
	}

	return len(m.Coefficients) - 1
}

func newModel(kind Kind, coeffs []float64, x, y []float64, predict func(float64) float64, eq Equation) *Model {
	m := &Model{
		Kind:         kind,
		Coefficients: coeffs,
		Equation:     eq,
		predict:      predict,
	}
	m.Metrics = computeMetrics(x, y, predict, len(coeffs))

	return m
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
