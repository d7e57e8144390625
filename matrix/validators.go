// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateContents runs a single O(r) row-length scan.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateContents – Ensures row-major contents describe a well-formed r×c grid.
//
// Implementation: empty input and an empty first row are size violations;
// any later row whose length differs from the first row's is a shape violation.
// Inputs: contents as R rows of C values.
// Errors: ErrInvalidSize (r == 0 or c == 0), ErrInvalidShape (ragged rows).
// Complexity: O(r) — row lengths only, entries are not inspected.
func ValidateContents(contents [][]float32) error {
	// Zero rows cannot form a matrix.
	if len(contents) == 0 {
		return validatorErrorf("ValidateContents: Rows", ErrInvalidSize)
	}
	// The first row fixes the column count; it must be non-empty.
	cols := len(contents[0])
	if cols == 0 {
		return validatorErrorf("ValidateContents: Columns", ErrInvalidSize)
	}
	// Every remaining row must match the declared column count.
	for i := 1; i < len(contents); i++ { // fixed row order
		if len(contents[i]) != cols {
			return validatorErrorf("ValidateContents", ErrInvalidShape)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil or wrong-length vector is a size violation (ErrInvalidSize).
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float32, n int) error {
	// Disallow nil vectors to avoid subtle bugs in transform routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrInvalidSize)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrInvalidSize) // vector length must match the number of columns
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Errors: wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}
