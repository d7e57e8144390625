// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// Shape violations are errors; mathematical non-answers are not. Det and
// Inverse never return an error: a non-square or singular input is a
// well-defined "no value", reported through their ok result.

var (
	// ErrInvalidSize is returned when a size is unusable for the operation:
	// zero rows or columns at construction, or a vector whose length does not
	// match the matrix column count in TransformVec.
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrInvalidShape is returned when supplied contents are inconsistent with
	// the declared shape: ragged rows at construction, or replacement contents
	// whose dimensions differ from the receiver's.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates incompatible shapes between two operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: mismatched shapes")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
