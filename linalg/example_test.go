// SPDX-License-Identifier: MIT
package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/linalg"
)

// ExampleMatrix_Solve solves a 2×2 system through the Gauss-Jordan inverse.
func ExampleMatrix_Solve() {
	a := linalg.MustMatrix([][]float64{{2, 1}, {1, 3}})
	b := linalg.MustVector(5, 10)

	x, err := a.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = %.3f\n", x.Components())
	// Output:
	// x = [1.000 3.000]
}

// ExampleVector_AngleBetween measures the angle between two vectors.
func ExampleVector_AngleBetween() {
	v := linalg.MustVector(1, 0)
	w := linalg.MustVector(0, 2)

	deg, _ := v.AngleBetween(w)
	fmt.Printf("%.1f\n", deg)
	// Output:
	// 90.0
}
