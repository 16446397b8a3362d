// SPDX-License-Identifier: MIT
// Package regression_test provides benchmarks for the fitting kernels.
package regression_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/regression"
)

var sinkModel *regression.Model

func benchPolynomial(b *testing.B, solver regression.Solver) {
	for _, n := range []int{100, 1000} {
		x := rangeX(n, func(i int) float64 { return float64(i) / 10 })
		y := apply(x, func(v float64) float64 { return 3*v*v*v - v + 4 })
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := regression.Polynomial(x, y, 3, regression.WithSolver(solver))
				if err != nil {
					b.Fatal(err)
				}
				sinkModel = m
			}
		})
	}
}

func BenchmarkPolynomialNormal(b *testing.B) { benchPolynomial(b, regression.SolverNormalEquations) }

func BenchmarkPolynomialQR(b *testing.B) { benchPolynomial(b, regression.SolverQR) }
