// SPDX-License-Identifier: MIT
package integrate_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/geometry"
	"github.com/katalvlaran/lvnum/integrate"
)

// ExampleTrapezoidalForce integrates a sampled load over a polyline.
func ExampleTrapezoidalForce() {
	x := []float64{0, 1, 2, 3, 4, 5}
	f := []float64{1, 2, 2, 3, 2, 1}

	force, err := integrate.TrapezoidalForce(x, f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(force)
	// Output:
	// 10
}

// ExampleResultantStretches splits a linear stress profile at its zero.
func ExampleResultantStretches() {
	stretches, err := integrate.ResultantStretches([]float64{-1, 1}, []float64{-1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range stretches {
		fmt.Printf("[%.1f, %.1f] R=%.3f c=%.3f\n", s.Start, s.End, s.Resultant, s.Centroid)
	}
	// Output:
	// [-1.0, 0.0] R=-0.500 c=-0.667
	// [0.0, 1.0] R=0.500 c=0.667
}

// ExampleGaussLegendreByIntervals integrates a step function exactly by
// splitting at its jumps.
func ExampleGaussLegendreByIntervals() {
	step := func(x float64) float64 {
		if x <= 1 {
			return 1
		}
		return 2
	}
	sum, ok, err := integrate.GaussLegendreByIntervals(step, []float64{0, 1, 3}, 2)
	if err != nil || !ok {
		fmt.Println("no value")
		return
	}
	fmt.Printf("%.6f\n", sum)
	// Output:
	// 5.000000
}

// ExampleMonteCarlo estimates π from the unit circle.
func ExampleMonteCarlo() {
	area, err := integrate.MonteCarlo(
		[]geometry.Shape{geometry.Circle{Radius: 1}},
		integrate.WithSeed(7),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(math.Abs(area-math.Pi) < 0.05)
	// Output:
	// true
}
