// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the numeric-policy options.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vmath/matrix"
)

// TestWithPivotTolerance_Effect raises the singularity threshold so that a
// well-conditioned pivot is treated as zero, forcing the exact-0 gate.
func TestWithPivotTolerance_Effect(t *testing.T) {
	a := MustNew(t, [][]float32{{0.5, 0}, {0, 0.5}})

	// Default policy: an ordinary diagonal matrix, det = 0.25.
	d, ok := matrix.Det(a)
	require.True(t, ok)
	assert.InDelta(t, 0.25, d, tol)

	// Tolerance above every pivot: the matrix is declared singular.
	d, ok = matrix.Det(a, matrix.WithPivotTolerance(1))
	require.True(t, ok)
	assert.Zero(t, d)

	// The same policy flows through Inverse.
	_, ok = matrix.Inverse(a, matrix.WithPivotTolerance(1))
	assert.False(t, ok, "inflated tolerance must make the matrix singular")
}

// TestWithPivotTolerance_PanicsOnInvalid pins the programmer-error contract:
// nonsensical tolerances fail eagerly at option construction.
func TestWithPivotTolerance_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithPivotTolerance(-1) })
	assert.Panics(t, func() { matrix.WithPivotTolerance(float32(math.NaN())) })
	assert.Panics(t, func() { matrix.WithPivotTolerance(float32(math.Inf(1))) })

	assert.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
	assert.NotPanics(t, func() { matrix.WithPivotTolerance(matrix.DefaultPivotTolerance) })
}

// TestDefaultPivotTolerance keeps the documented constant stable.
func TestDefaultPivotTolerance(t *testing.T) {
	assert.Equal(t, float32(1e-10), matrix.DefaultPivotTolerance)
}
