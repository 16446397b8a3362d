// SPDX-License-Identifier: MIT

// Package probability offers the sampling helpers used by the Monte Carlo
// estimator: uniform and normal draws, a population normal fit and a
// deterministic RNG factory.
//
// All randomness is injected as *rand.Rand. Build one with RNGFromSeed for
// reproducible runs and split per goroutine with DeriveRNG.
package probability
