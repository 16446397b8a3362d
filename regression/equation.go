// SPDX-License-Identifier: MIT
// Package regression - equation rendering.

package regression

import (
	"fmt"
	"strconv"
	"strings"
)

// formatNumber renders v in the shortest form that round-trips; negative
// zero prints as "0".
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// signedTerm renders " + c<suffix>" or " - |c|<suffix>".
func signedTerm(c float64, suffix string) string {
	if c < 0 {
		return " - " + formatNumber(-c) + suffix
	}

	return " + " + formatNumber(c) + suffix
}

func powerSuffix(i int) string {
	switch i {
	case 0:
		return ""
	case 1:
		return " * x"
	}

	return fmt.Sprintf(" * x^%d", i)
}

// polynomialEquation renders a highest-power-first coefficient slice
// lowest power first:
//
//	[1, -2, 3] → "y = a0 + a1 * x + a2 * x^2" / "y = 3 - 2 * x + 1 * x^2"
func polynomialEquation(coeffs []float64) Equation {
	k := len(coeffs) - 1
	var params, values strings.Builder
	params.WriteString("y = a0")
	values.WriteString("y = " + formatNumber(coeffs[k]))
	for i := 1; i <= k; i++ {
		fmt.Fprintf(&params, " + a%d%s", i, powerSuffix(i))
		values.WriteString(signedTerm(coeffs[k-i], powerSuffix(i)))
	}

	return Equation{WithParameters: params.String(), WithCoefficients: values.String()}
}
