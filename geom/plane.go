// SPDX-License-Identifier: MIT

// Package geom: infinite planes and orthogonal projection.
package geom

// Plane is an infinite plane in 3D space, defined by a normal vector and any
// point lying on the plane. Immutable once built; construct via NewPlane so
// the non-zero-normal precondition is enforced in one place.
type Plane struct {
	Normal Vec3 // non-zero; need not be unit length
	Point  Vec3 // any reference point on the plane
}

// NewPlane builds a plane from a normal and a reference point.
//
// Implementation:
//   - Stage 1: reject a zero normal — the one input that would make Project
//     divide by zero. Any non-zero normal is accepted as-is (no normalization:
//     the projection formula divides by N·N, so length cancels out).
//
// Errors:
//   - ErrZeroNormal (usage error; reported, never silently corrected).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewPlane(normal, point Vec3) (Plane, error) {
	// A zero normal defines no plane; fail fast at construction.
	if normal.IsZero() {
		return Plane{}, ErrZeroNormal
	}

	return Plane{Normal: normal, Point: point}, nil
}

// Project returns the orthogonal projection of p onto the plane:
// with v = p − Point and t = (v·N)/(N·N), the result is p − t·N.
//
// Behavior highlights:
//   - Pure: neither the plane nor p is mutated; the result is a new value.
//   - The returned point satisfies (result − Point)·N == 0 up to float32
//     rounding.
//
// Determinism:
//   - Straight-line arithmetic, no branches.
//
// Complexity:
//   - Time O(1), Space O(1).
func (pl Plane) Project(p Vec3) Vec3 {
	// Offset of p from the plane's reference point.
	v := p.Sub(pl.Point)
	// Signed distance along the (unnormalized) normal, in units of |N|².
	t := v.Dot(pl.Normal) / pl.Normal.Dot(pl.Normal)

	// Walk back along the normal onto the plane.
	return p.Sub(pl.Normal.Scale(t))
}
