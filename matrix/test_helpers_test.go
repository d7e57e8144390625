// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed unless a test targets validation.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vmath/matrix"
)

// hide WRAPS any Matrix to mask its concrete type from type assertions,
// forcing kernels onto their interface fallback path. Wrap ONLY the operand
// whose path you want to de-opt; keep the other one *Dense to isolate
// fast-path/fallback differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or aborts the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustNew builds a *Dense from row-major contents or aborts the test.
func MustNew(t *testing.T, contents [][]float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(contents)
	require.NoError(t, err, "New(%v)", contents)

	return m
}

// AtOr aborts the test on an At error; keeps assertions on one line.
func AtOr(t *testing.T, m matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireCloseMat asserts entry-wise |got−want| ≤ tol over identical shapes.
// want is given as row-major literals to keep fixtures readable.
func RequireCloseMat(t *testing.T, want [][]float32, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], AtOr(t, got, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}

// RequireIdentity asserts got ≈ I_n within tol (diagonal ≈ 1, off-diagonal ≈ 0).
func RequireIdentity(t *testing.T, got matrix.Matrix, tol float64) {
	t.Helper()
	n := got.Rows()
	require.Equal(t, n, got.Cols(), "identity must be square")
	var want float32
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, AtOr(t, got, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}
