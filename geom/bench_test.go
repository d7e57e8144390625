// SPDX-License-Identifier: MIT
// Package geom_test: benchmarks for projection and angular sorting.
package geom_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vmath/geom"
)

func BenchmarkPlane_Project(b *testing.B) {
	pl, err := geom.NewPlane(geom.Vec3{X: 1, Y: 2, Z: 2}, geom.Vec3{X: 1})
	if err != nil {
		b.Fatal(err)
	}
	p := geom.Vec3{X: 3, Y: -1, Z: 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = pl.Project(p) // idempotent after the first iteration
	}
	_ = p
}

func BenchmarkSortPointsClockwise(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	base := make([]geom.Vec2, 64)
	for i := range base {
		base[i] = geom.Vec2{X: rng.Float32()*20 - 10, Y: rng.Float32()*20 - 10}
	}
	scratch := make([]geom.Vec2, len(base))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, base) // resort the same unsorted input each iteration
		geom.SortPointsClockwise(scratch)
	}
}
