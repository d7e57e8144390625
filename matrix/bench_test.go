// SPDX-License-Identifier: MIT
// Package matrix_test: benchmarks for the hot kernels on the small, fixed
// shapes rendering math actually uses.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vmath/matrix"
)

// randDense builds an n×n Dense with deterministic pseudo-random entries.
func randDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// shift away from zero so Mul's zero-skip stays cold
			if err = m.Set(i, j, rng.Float32()+0.5); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

func BenchmarkTransformVec_4x4(b *testing.B) {
	m := randDense(b, 4, 1)
	x := []float32{1, 2, 3, 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.TransformVec(m, x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_4x4(b *testing.B) {
	ma := randDense(b, 4, 1)
	mb := randDense(b, 4, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(ma, mb); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDet_4x4(b *testing.B) {
	m := randDense(b, 4, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := matrix.Det(m); !ok {
			b.Fatal("no value")
		}
	}
}

func BenchmarkInverse_4x4(b *testing.B) {
	m := randDense(b, 4, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := matrix.Inverse(m); !ok {
			b.Fatal("singular input")
		}
	}
}

func BenchmarkTranspose_4x4(b *testing.B) {
	m := randDense(b, 4, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Transpose(m); err != nil {
			b.Fatal(err)
		}
	}
}
