// Package lvnum is a small numerical-methods toolkit: linear algebra on
// dense matrices, curve fitting, integration of sampled and analytic data,
// root finding and Monte Carlo estimation of areas and volumes.
//
// What is inside?
//
//	linalg/      — dense Matrix and Vector, Mul/Transpose/Inverse/Determinant, gonum interop
//	mathx/       — AreEqual, Round, Sum, Factorial, piecewise-linear interpolation
//	geometry/    — Line2D, BoundingBox, Rectangle/Circle/RectangularPrism/Sphere shapes
//	probability/ — uniform and normal sampling, sample statistics, deterministic RNG factory
//	regression/  — polynomial and closed-form (log, exp, power) least squares with metrics
//	integrate/   — trapezoidal force/moment, resultant stretches, Gauss-Legendre, Monte Carlo
//	rootfind/    — Brent's method on a bracket
//
// Every package reports failures through sentinel errors (errors.Is), takes
// tunables through functional options and never logs unless a *slog.Logger
// is handed in explicitly.
//
// The lvnum command (cmd/lvnum) exposes the toolkit on the command line:
//
//	lvnum fit --data points.csv --kind quadratic --plot fit.png
//	lvnum stretches --data profile.yaml
//	lvnum quad --poly 0,0,3 --from 0 --to 5
//	lvnum montecarlo --data shapes.yaml --seed 7
//	lvnum root --poly -2,0,1 --lower 0 --upper 2
//
// Configuration is read from YAML or TOML (--config) and any flag overrides it.
//
//	go get github.com/katalvlaran/lvnum
package lvnum
