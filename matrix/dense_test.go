// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for Dense construction, mutation and equality.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vmath/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if AtOr(t, m, i, j) != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDense_InvalidSize(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -1},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidSize, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

// TestNew_Validation drives the construction contract: zero rows and empty
// rows are size violations, ragged rows are shape violations.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		contents [][]float32
		want     error
	}{
		{"zero rows", [][]float32{}, matrix.ErrInvalidSize},
		{"nil contents", nil, matrix.ErrInvalidSize},
		{"empty first row", [][]float32{{}}, matrix.ErrInvalidSize},
		{"ragged shorter", [][]float32{{1, 2}, {3}}, matrix.ErrInvalidShape},
		{"ragged longer", [][]float32{{1, 2}, {3, 4, 5}}, matrix.ErrInvalidShape},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.contents)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_CopiesContents ensures the constructor owns its storage: later
// mutation of the caller's slices must not leak into the matrix.
func TestNew_CopiesContents(t *testing.T) {
	rows := [][]float32{{1, 2}, {3, 4}}
	m := MustNew(t, rows)

	rows[0][0] = 99 // mutate the caller-side slice after construction

	assert.Equal(t, float32(1), AtOr(t, m, 0, 0), "constructor must deep-copy contents")
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := MustDense(t, 2, 3)

	for _, tc := range []struct{ i, j int }{
		{-1, 0}, {2, 0}, {0, -1}, {0, 3},
	} {
		_, err := m.At(tc.i, tc.j)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		err = m.Set(tc.i, tc.j, 1)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}

	require.NoError(t, m.Set(1, 2, 7.5))
	assert.Equal(t, float32(7.5), AtOr(t, m, 1, 2))
}

// TestSetContents_ReplacesWholesale verifies the explicit mutator and its
// strict shape contract: the receiver's dimensions never change, and any
// mismatched replacement is rejected before a single entry is written.
func TestSetContents_ReplacesWholesale(t *testing.T) {
	m := MustNew(t, [][]float32{{1, 2}, {3, 4}})

	require.NoError(t, m.SetContents([][]float32{{5, 6}, {7, 8}}))
	assert.True(t, m.Equal(MustNew(t, [][]float32{{5, 6}, {7, 8}})))

	for _, tc := range []struct {
		name     string
		contents [][]float32
		want     error
	}{
		{"empty", [][]float32{}, matrix.ErrInvalidSize},
		{"ragged", [][]float32{{1, 2}, {3}}, matrix.ErrInvalidShape},
		{"wrong rows", [][]float32{{1, 2}}, matrix.ErrInvalidShape},
		{"wrong cols", [][]float32{{1}, {2}}, matrix.ErrInvalidShape},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := m.SetContents(tc.contents)
			assert.ErrorIs(t, err, tc.want)
			// a rejected replacement must leave the receiver untouched
			assert.True(t, m.Equal(MustNew(t, [][]float32{{5, 6}, {7, 8}})))
		})
	}
}

// TestEqual_Exact pins the no-tolerance contract: equality is entry-wise and
// exact, so even the smallest representable difference breaks it.
func TestEqual_Exact(t *testing.T) {
	a := MustNew(t, [][]float32{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float32{{1, 2}, {3, 4}})
	c := MustNew(t, [][]float32{{1, 2}, {3, 4.0000005}})
	wide := MustNew(t, [][]float32{{1, 2, 0}, {3, 4, 0}})

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(hide{b}), "fallback path must agree with fast path")
	assert.False(t, a.Equal(c), "exact comparison admits no tolerance")
	assert.False(t, a.Equal(wide), "different shapes are never equal")
	assert.False(t, a.Equal(nil))
}

func TestClone_Independence(t *testing.T) {
	a := MustNew(t, [][]float32{{1, 2}, {3, 4}})
	cl := a.Clone()

	require.NoError(t, a.Set(0, 0, 42))

	assert.Equal(t, float32(1), AtOr(t, cl, 0, 0), "clone must own independent storage")
	assert.Equal(t, float32(42), AtOr(t, a, 0, 0))
}

func TestDense_String(t *testing.T) {
	m := MustNew(t, [][]float32{{1, 2.5}, {3, 4}})
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	eye, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireIdentity(t, eye, 0)

	_, err = matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)
}

func TestIsSquare(t *testing.T) {
	assert.True(t, matrix.IsSquare(MustDense(t, 2, 2)))
	assert.False(t, matrix.IsSquare(MustDense(t, 2, 3)))
	assert.False(t, matrix.IsSquare(nil))
}

// TestErrorWrapping confirms sentinels stay matchable through the op-tag
// wrapping used at kernel boundaries.
func TestErrorWrapping(t *testing.T) {
	_, err := matrix.New([][]float32{{1}, {2, 3}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrInvalidShape))
	assert.Contains(t, err.Error(), "matrix: invalid shape")
}
