// SPDX-License-Identifier: MIT

// Package regression fits least-squares models to (x, y) samples.
//
// The regression package provides:
//
//   - Polynomial: order-k fit through the normal equations (AᵗA)⁻¹Aᵗy,
//     solved with linalg.Inverse; optionally through gonum's QR
//     factorization (WithSolver(SolverQR)).
//   - Logarithmic, Exponential, Power: closed-form fits of y = a + b ln x,
//     y = a e^(bx) and y = a x^b on linearized variables.
//   - LeastSquares: dispatch by Kind over a slice of Points, dropping
//     non-finite samples first.
//
// Every Model carries its coefficients, six goodness-of-fit metrics and the
// fitted equation rendered twice: with parameter names and with values.
//
// Coefficient order:
//
//	– Polynomial: highest power first, c[0]·x^k + … + c[k].
//	– Logarithmic, Exponential, Power: [a, b].
//
// Errors (sentinel):
//
//	– ErrLengthMismatch, ErrInvalidOrder, ErrDomain, ErrTooFewPoints,
//	  ErrDegenerateFit; linalg.ErrSingular from the normal equations.
//
// Example usage:
//
//	m, err := regression.Polynomial([]float64{0, 1, 3, 4}, []float64{1, 2, 4, 5}, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Equation.WithCoefficients) // y = 1 + 1 * x
package regression
