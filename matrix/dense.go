// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness. Dense exclusively owns its backing storage: no
// constructor or kernel ever aliases caller-supplied slices.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float32 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns, immutable after construction
	data []float32 // flat backing storage, length == r*c, exclusively owned
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidSize.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidSize
	}
	// Allocate flat slice
	data := make([]float32, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// New creates a Dense matrix from row-major contents, copying every row into
// freshly owned storage.
//
// Implementation:
//   - Stage 1: ValidateContents rejects empty input and ragged rows.
//   - Stage 2: Allocate the flat backing slice and copy row by row.
//
// Inputs:
//   - contents: R rows of C values each; R ≥ 1, C ≥ 1, all rows equal length.
//
// Returns:
//   - *Dense: matrix whose Rows/Cols equal the validated dimensions.
//
// Errors:
//   - ErrInvalidSize  (no rows, or an empty first row).
//   - ErrInvalidShape (a row whose length differs from the first row's).
//
// Determinism:
//   - Fixed row-by-row copy order; the input is never retained or mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(contents [][]float32) (*Dense, error) {
	// Validate shape once, up front.
	if err := ValidateContents(contents); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// Allocate and copy; the caller keeps ownership of its slices.
	rows, cols := len(contents), len(contents[0])
	m := &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}
	for i := 0; i < rows; i++ { // fixed row order
		copy(m.data[i*cols:(i+1)*cols], contents[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
//
// Notes:
//   - Set is the only mutation besides SetContents; neither is synchronized.
//     Share a Dense across goroutines only when all of them read.
func (m *Dense) Set(row, col int, v float32) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// SetContents overwrites every entry of the matrix with new row-major data.
// The receiver's shape never changes: the replacement must match it exactly.
//
// Implementation:
//   - Stage 1: ValidateContents, then compare dimensions against the receiver.
//   - Stage 2: Copy row by row into the existing backing slice.
//
// Errors:
//   - ErrInvalidSize  (empty contents).
//   - ErrInvalidShape (ragged rows, or dimensions differing from the receiver).
//
// Determinism:
//   - Fixed row-by-row copy order; on error the receiver is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(1) (storage is reused, never reallocated).
//
// Notes:
//   - Not thread-safe; external synchronization is required when the matrix
//     is shared across goroutines.
func (m *Dense) SetContents(contents [][]float32) error {
	// Validate the replacement's internal consistency first.
	if err := ValidateContents(contents); err != nil {
		return fmt.Errorf("SetContents: %w", err)
	}
	// The replacement must match the receiver's immutable shape.
	if len(contents) != m.r || len(contents[0]) != m.c {
		return fmt.Errorf("SetContents: %w", ErrInvalidShape)
	}

	// Copy into the existing storage; no reallocation, no aliasing.
	for i := 0; i < m.r; i++ {
		copy(m.data[i*m.c:(i+1)*m.c], contents[i])
	}

	return nil
}

// Equal reports exact structural equality: same shape and bit-for-bit equal
// entries. No tolerance is applied; approximate comparison is a test-suite
// concern, not part of this contract.
//
// Determinism:
//   - Fixed flat scan (Dense) or i→j scan (fallback); short-circuits on the
//     first differing entry.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *Dense) Equal(other Matrix) bool {
	// A nil operand is never equal.
	if other == nil {
		return false
	}
	// Shapes must match before any entry comparison.
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}

	// Fast-path: both *Dense → flat slice comparison.
	if od, ok := other.(*Dense); ok {
		for idx := 0; idx < len(m.data); idx++ {
			if m.data[idx] != od.data[idx] {
				return false
			}
		}

		return true
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var v float32
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err = other.At(i, j)
			if err != nil || m.data[i*m.c+j] != v {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float32, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
