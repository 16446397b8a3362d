// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures for kernels.
//   - Keep all data finite and well-formed.

package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/linalg"
)

// mustMatrix builds a Matrix or fails the test.
func mustMatrix(tb testing.TB, rows [][]float64) *linalg.Matrix {
	tb.Helper()
	m, err := linalg.NewMatrix(rows)
	if err != nil {
		tb.Fatalf("NewMatrix: %v", err)
	}

	return m
}

// mustVector builds a Vector or fails the test.
func mustVector(tb testing.TB, comps ...float64) *linalg.Vector {
	tb.Helper()
	v, err := linalg.NewVector(comps...)
	if err != nil {
		tb.Fatalf("NewVector: %v", err)
	}

	return v
}

// randomMatrix returns an n×n matrix with entries in [-1, 1) plus n on the
// diagonal, so it is strictly diagonally dominant and invertible.
func randomMatrix(tb testing.TB, n int, seed int64) *linalg.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}

	return mustMatrix(tb, rows)
}

// compareClose fails if got and want differ anywhere by more than tol.
func compareClose(tb testing.TB, got [][]float64, want [][]float64, tol float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("rows: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			tb.Fatalf("row %d: got %d cols, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			if math.Abs(got[i][j]-want[i][j]) > tol {
				tb.Fatalf("[%d,%d]: got %.17g, want %.17g (tol %g)", i, j, got[i][j], want[i][j], tol)
			}
		}
	}
}
