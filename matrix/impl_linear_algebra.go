// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels over any Matrix
// implementation — vector transformation, matrix multiplication, transpose,
// scalar scaling, determinant, cofactor, and inverse. All kernels perform
// strict fail-fast validation; shape violations return clear sentinel errors
// while mathematical non-answers (non-square determinant, singular inverse)
// report "no value" through an ok result.
//
// Purpose:
//   - Declare and implement the algebraic kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels never mutate their operands; Det/Inverse work on owned copies.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum float32 = 0.0

// DetSign* are the two values of the accumulated row-swap sign factor in
// Gaussian elimination; each swap multiplies the running sign by DetSignFlip.
const (
	DetSignIdentity float32 = 1.0
	DetSignFlip     float32 = -1.0
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTransformVec = "TransformVec"
	opAdd          = "Add"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching the underlying sentinel. Call only
// with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// abs32 returns |v| for float32 without round-tripping precision.
// Complexity: O(1).
func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// TransformVec computes y = m·x for a column vector x, the core vertex
// transformation of a render pipeline.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: One dot product per row; *Dense uses flat row-major indexing.
//
// Behavior highlights:
//   - Pure: neither m nor x is mutated; the caller owns the returned vector.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//   - x: vector of length c.
//
// Returns:
//   - []float32: freshly allocated vector y of length r, y[i] = Σ_j m[i,j]*x[j].
//
// Errors:
//   - ErrNilMatrix  (nil m).
//   - ErrInvalidSize (nil x, or len(x) != m.Cols()).
//
// Determinism:
//   - Fixed i→j loop order.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func TransformVec(m Matrix, x []float32) ([]float32, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTransformVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opTransformVec, err)
	}
	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]float32, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc float32
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum             // reset accumulator per row
			base = i * d.c            // flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				acc += d.data[base+j] * x[j] // accumulate m(i,j)*x(j)
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based dot-products via At.
	var i, j int   // loop indices
	var mv float32 // temporary to hold m(i,j)
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		y[i] = ZeroSum             // initialize y(i) to zero
		for j = 0; j < cols; j++ { // iterate columns
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, matrixErrorf(opTransformVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j] // accumulate
		}
	}

	return y, nil // return computed vector
}

// Add returns the element-wise sum C = A + B of two equally shaped matrices.
//
// Implementation:
//   - Stage 1: Validate both inputs non-nil, then ValidateSameShape.
//   - Stage 2: *Dense pair → single flat loop; otherwise generic i→j At/At/Set.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (differing dimensions).
//
// Determinism:
//   - Fixed flat or i→j order; neither operand mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	// Validate both operands before touching shapes.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var i, j int
	var av, bv float32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C; neither operand mutated.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float32
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Always defined for any shape; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed loop orders independent of values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float32) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// flatCopy snapshots m into a fresh flat row-major slice, so elimination can
// mutate freely without touching the caller's matrix.
// Assumes m is non-nil; shape is read once. Complexity: O(r*c).
func flatCopy(m Matrix) []float32 {
	// Fast-path: *Dense → single copy of the backing slice.
	if d, ok := m.(*Dense); ok {
		w := make([]float32, len(d.data))
		copy(w, d.data)

		return w
	}

	// Fallback: interface path with fixed i→j order. At cannot fail inside
	// the validated shape, so its error is intentionally discarded.
	rows, cols := m.Rows(), m.Cols()
	w := make([]float32, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			w[i*cols+j], _ = m.At(i, j)
		}
	}

	return w
}

// Det computes the determinant by Gaussian elimination with partial pivoting
// over an owned working copy; the input matrix is never mutated.
//
// A determinant only exists for square matrices: for nil or non-square input
// Det reports ok=false — "no value", a well-defined mathematical non-answer,
// NOT a usage error. Shape mismatch here is deliberately silent.
//
// Implementation:
//   - Stage 1: Shape gate (nil / non-square → no value); snapshot via flatCopy.
//   - Stage 2: For each pivot column i in 0..n-2, select the row with the
//     largest |entry| in rows i..n-1 (partial pivoting). A largest pivot below
//     the tolerance means a structurally dependent column: report exactly 0,
//     singular, and stop. Otherwise swap rows if needed (flipping the running
//     sign) and eliminate the column below the pivot.
//   - Stage 3: determinant = sign × product of the diagonal.
//
// Behavior highlights:
//   - All arithmetic is float32; meaningful precision loss on larger shapes is
//     expected and tolerated, never reported as a failure.
//   - The only singularity heuristic is the fixed pivot tolerance
//     (DefaultPivotTolerance, override via WithPivotTolerance).
//
// Inputs:
//   - m: matrix to measure; only square input yields a value.
//   - opts: numeric policy overrides (WithPivotTolerance).
//
// Returns:
//   - float32: the determinant (exactly 0 when the pivot gate fires).
//   - bool: false when no value exists (nil or non-square input).
//
// Determinism:
//   - Fixed column order, fixed pivot scan order, first-maximum pivot choice.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Det(m Matrix, opts ...Option) (float32, bool) {
	// Shape gate: a determinant of a nil or non-square matrix has no value.
	if m == nil || m.Rows() != m.Cols() {
		return 0, false
	}
	cfg := gatherOptions(opts...)

	// Snapshot the input; elimination mutates only this copy.
	n := m.Rows()
	w := flatCopy(m)

	var (
		i, r, c  int     // pivot column, scan row, elimination column
		pivotRow int     // row holding the largest |entry| in the pivot column
		maxAbs   float32 // that largest |entry|
		factor   float32 // elimination multiplier for a row
		sign     = DetSignIdentity
	)
	for i = 0; i < n-1; i++ {
		// Partial pivoting: scan rows i..n-1 for the largest |entry| in column i.
		pivotRow, maxAbs = i, abs32(w[i*n+i])
		for r = i + 1; r < n; r++ {
			if a := abs32(w[r*n+i]); a > maxAbs {
				pivotRow, maxAbs = r, a
			}
		}

		// A vanishing pivot column means singularity: the determinant is
		// exactly 0 and further elimination is pointless.
		if maxAbs < cfg.pivotTol {
			return 0, true
		}

		// Bring the pivot row into place; each swap flips the sign factor.
		if pivotRow != i {
			for c = 0; c < n; c++ {
				w[i*n+c], w[pivotRow*n+c] = w[pivotRow*n+c], w[i*n+c]
			}
			sign *= DetSignFlip
		}

		// Eliminate column i below the pivot.
		for r = i + 1; r < n; r++ {
			factor = w[r*n+i] / w[i*n+i]
			if factor == 0 {
				continue // row already eliminated in this column
			}
			for c = i; c < n; c++ {
				w[r*n+c] -= factor * w[i*n+c]
			}
		}
	}

	// The reduced matrix is upper triangular: multiply the diagonal.
	det := sign
	for i = 0; i < n; i++ {
		det *= w[i*n+i]
	}

	return det, true
}

// Cofactor computes the (row, col) cofactor: the determinant of the minor
// obtained by deleting row `row` and column `col`, signed by (−1)^(row+col).
//
// Precondition: m should be square with n ≥ 2 — a cofactor is only meaningful
// there. The precondition is not silently assumed: non-square input produces
// a non-square minor, whose determinant has no value, so Cofactor reports
// ok=false. Out-of-range indices and shapes too small to form a minor also
// report ok=false.
//
// Implementation:
//   - Stage 1: Gate nil input, minor viability, and index bounds.
//   - Stage 2: Copy every entry except the deleted row/column into a fresh
//     (R−1)×(C−1) Dense, then delegate to Det.
//
// Determinism:
//   - Fixed i→j copy order; delegates numeric policy to Det.
//
// Complexity:
//   - Time O(n³) (dominated by the minor's determinant), Space O(n²).
func Cofactor(m Matrix, row, col int, opts ...Option) (float32, bool) {
	// Gate: nil input, degenerate minors, and out-of-range indices.
	if m == nil {
		return 0, false
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return 0, false // no (R−1)×(C−1) minor exists
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, false
	}

	// Build the minor, skipping the deleted row and column.
	sub, err := NewDense(rows-1, cols-1)
	if err != nil {
		return 0, false
	}
	var i, j, di, dj int // source and destination indices
	var v float32
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		dj = 0
		for j = 0; j < cols; j++ {
			if j == col {
				continue
			}
			v, _ = m.At(i, j) // bounds already validated
			sub.data[di*sub.c+dj] = v
			dj++
		}
		di++
	}

	// The minor's determinant carries the checkerboard sign.
	minor, ok := Det(sub, opts...)
	if !ok {
		return 0, false // non-square minor: the cofactor has no value
	}
	if (row+col)%2 != 0 {
		minor = -minor
	}

	return minor, true
}

// Inverse computes A⁻¹ by the adjugate method: the cofactor matrix is built
// entry by entry, transposed into the adjugate, and scaled by 1/det(A).
//
// An inverse only exists for square matrices with non-zero determinant: nil,
// non-square, or singular input reports ok=false — "no value", not an error.
// The source matrix is never mutated; the result is freshly owned.
//
// Implementation:
//   - Stage 1: Shape gate; Det(m) — no value or exact 0 means no inverse.
//     The 1×1 case is closed-form: [1/det].
//   - Stage 2: Cofactor for every entry into an n×n Dense.
//   - Stage 3: Transpose (adjugate), then Scale by the reciprocal determinant.
//
// Behavior highlights:
//   - float32 throughout; A·A⁻¹ approximates identity within float32 accuracy.
//
// Determinism:
//   - Fixed i→j cofactor order; delegates numeric policy to Det.
//
// Complexity:
//   - Time O(n⁵): n² cofactors, each an O(n³) determinant. Acceptable only for
//     the small, fixed shapes this package targets.
func Inverse(m Matrix, opts ...Option) (Matrix, bool) {
	// Shape gate mirrors Det: nil or non-square input has no inverse.
	if m == nil || m.Rows() != m.Cols() {
		return nil, false
	}

	// A zero determinant (or no determinant at all) means singular.
	det, ok := Det(m, opts...)
	if !ok || det == 0 {
		return nil, false
	}

	n := m.Rows()
	// Closed form for 1×1: no minors exist, the adjugate is [1].
	if n == 1 {
		inv, err := NewDense(1, 1)
		if err != nil {
			return nil, false
		}
		inv.data[0] = 1 / det

		return inv, true
	}

	// Build the cofactor matrix entry by entry.
	cof, err := NewDense(n, n)
	if err != nil {
		return nil, false
	}
	var i, j int
	var cv float32
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cv, ok = Cofactor(m, i, j, opts...)
			if !ok {
				return nil, false
			}
			cof.data[i*n+j] = cv
		}
	}

	// Adjugate = transpose of the cofactor matrix; then scale by 1/det.
	adj, err := Transpose(cof)
	if err != nil {
		return nil, false
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, false
	}

	return inv, true
}
