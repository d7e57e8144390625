// Package matrix implements dense float32 matrices for vertex and
// transform math, with validated construction and the small set of
// algebraic kernels a scene pipeline needs.
//
// 🚀 What is matrix?
//
//	A dynamically shaped, row-major dense matrix with:
//	  • validated construction from caller-supplied contents
//	  • vector transformation y = A·x
//	  • element-wise addition and matrix multiplication
//	  • determinant via Gaussian elimination with partial pivoting
//	  • cofactors, transpose, and inverse by the adjugate method
//
// ✨ Key properties:
//   - float32 entries end to end; precision loss on larger shapes is an
//     accepted, documented property, never an error condition
//   - operations never mutate their operands; every derivation allocates
//     fresh, independently owned storage
//   - shape violations surface as sentinel errors (errors.Is-matchable);
//     mathematical non-answers (determinant of a non-square matrix,
//     inverse of a singular one) report "no value" via an ok bool instead
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vmath/matrix"
//
//	a, err := matrix.New([][]float32{{4, 7}, {2, 6}})
//	if err != nil { ... }
//
//	inv, ok := matrix.Inverse(a) // ok=false for singular/non-square
//	y, err := matrix.TransformVec(a, []float32{1, 0})
//
// Performance:
//
//   - TransformVec / Add / Transpose / Scale: O(r·c)
//   - Mul: O(r·n·c)
//   - Det: O(n³); Inverse: O(n⁵) (n² cofactors, each an O(n³) determinant) —
//     intended for the small, fixed shapes of rendering math
//
// See example_test.go for runnable usage patterns.
package matrix
