// Package geom provides the small vector-algebra toolkit a scene renderer
// needs around the matrix package: 2D/3D vector primitives, orthogonal
// projection of points onto planes, and clockwise angular ordering of 2D
// point sets (so flat shapes triangulate and draw correctly).
//
// 🚀 What is geom?
//
//	Pure functions over float32 value types:
//	  • Vec2 / Vec3 — add, subtract, scale, dot, cross, length, normalize
//	  • Plane.Project — orthogonal projection of a point onto a plane
//	  • SortPointsClockwise — in-place clockwise angular sort of 2D points
//
// ✨ Key properties:
//   - value semantics: every vector operation returns a new value, nothing
//     is mutated except the explicit in-place point sort
//   - no shared state: all functions are safe for concurrent use on data
//     owned by the caller
//   - the zero-normal plane is rejected at construction (ErrZeroNormal),
//     so Project never divides by zero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vmath/geom"
//
//	pl, err := geom.NewPlane(geom.Vec3{Z: 1}, geom.Vec3{})
//	q := pl.Project(geom.Vec3{X: 1, Y: 2, Z: 5}) // {1 2 0}
//
//	pts := []geom.Vec2{{1, 1}, {0, 0}, {1, 0}, {0, 1}}
//	geom.SortPointsClockwise(pts) // clockwise from the lowest corner
//
// See example_test.go for runnable usage patterns.
package geom
