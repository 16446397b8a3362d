// SPDX-License-Identifier: MIT
// Package regression - goodness-of-fit metrics.

package regression

import (
	"math"

	"github.com/katalvlaran/lvnum/mathx"
)

// computeMetrics evaluates predict on every sample and derives the six
// metrics. p is the number of fitted coefficients.
//
//	MAE   = Σ|y-ŷ| / n
//	MSE   = Σ(y-ŷ)² / n
//	RMSE  = √MSE
//	MAPE  = 100/n · Σ|(y-ŷ)/y|
//	R²    = 1 - RSS/TSS
//	R²adj = 1 - (1-R²)(n-1)/(n-(p+1))
//
// A zero sample makes MAPE infinite. With n == p+1 the R²adj denominator
// is zero: an imperfect fit gives -Inf, an exact one (R² == 1) gives
// 0·Inf = NaN. All are reported as computed.
func computeMetrics(x, y []float64, predict func(float64) float64, p int) Metrics {
	n := float64(len(x))
	abs := make([]float64, len(x))
	sq := make([]float64, len(x))
	pct := make([]float64, len(x))
	var r float64
	for i := range x {
		r = y[i] - predict(x[i])
		abs[i] = math.Abs(r)
		sq[i] = r * r
		pct[i] = math.Abs(r / y[i])
	}

	rss := mathx.Sum(sq)
	mean := mathx.Sum(y) / n
	dev := make([]float64, len(y))
	for i, v := range y {
		dev[i] = (v - mean) * (v - mean)
	}
	tss := mathx.Sum(dev)

	mse := rss / n
	r2 := 1 - rss/tss

	return Metrics{
		MeanAbsoluteError:           mathx.Sum(abs) / n,
		MeanSquaredError:            mse,
		RootMeanSquaredError:        math.Sqrt(mse),
		MeanAbsolutePercentageError: 100 / n * mathx.Sum(pct),
		R2Score:                     r2,
		R2ScoreAdjusted:             1 - (1-r2)*((n-1)/(n-float64(p+1))),
	}
}
