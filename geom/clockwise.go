// SPDX-License-Identifier: MIT

// Package geom: clockwise angular ordering of 2D point sets.
package geom

import "sort"

// rootCosine ranks a point that coincides with the root ahead of every real
// point: genuine cosines lie in [-1, 1], so any value above 1 sorts first.
const rootCosine float32 = 2

// SortPointsClockwise reorders points in place into clockwise angular order
// around a computed root point, so a flat shape's outline can be walked (and
// filled) edge by edge. The slice is reordered only — never resized.
//
// Implementation:
//   - Stage 1: pick the root — the point with the smallest Y coordinate,
//     ties broken by smallest X. A synthetic helper point one unit to the
//     left of the root fixes the reference direction root→helper = (−1, 0).
//   - Stage 2: stable-sort every point by the cosine of the angle between
//     the reference direction and root→point, larger cosine (smaller angle)
//     first. All points sit at or above the root, so the sweep from the
//     leftmost direction over the top is a clockwise traversal.
//
// Behavior highlights:
//   - In place: the caller's slice is reordered, not reallocated.
//   - Points coinciding with the root sort ahead of all others; their
//     relative order among themselves is unspecified (the sort key does not
//     distinguish them, and no further tie-breaking is attempted).
//   - Stable sort: points with equal cosine keep their input order.
//
// Determinism:
//   - Root selection is a fixed forward scan; the sort is stable.
//
// Complexity:
//   - Time O(n log n), Space O(log n) for the sort.
func SortPointsClockwise(points []Vec2) {
	// Nothing to order for fewer than two points.
	if len(points) < 2 {
		return
	}

	// Stage 1: root = lowest Y, ties broken by lowest X.
	root := points[0]
	for _, p := range points[1:] {
		if p.Y < root.Y || (p.Y == root.Y && p.X < root.X) {
			root = p
		}
	}
	// Direction from the root to the synthetic helper one unit to its left.
	ref := Vec2{X: -1, Y: 0}

	// Stage 2: larger cosine (smaller angle from the reference) sorts first.
	sort.SliceStable(points, func(i, j int) bool {
		return angularCosine(root, ref, points[i]) > angularCosine(root, ref, points[j])
	})
}

// angularCosine returns cos(angle between ref and root→p), or rootCosine when
// p coincides with the root. ref must be unit length, so the denominator is
// just |root→p|.
func angularCosine(root, ref, p Vec2) float32 {
	d := p.Sub(root)
	if d.IsZero() {
		return rootCosine // the root (and its duplicates) lead the order
	}

	return ref.Dot(d) / d.Len()
}
