// Package vmath is a compact numeric toolkit for interactive 3D scenes:
// dense matrix algebra plus the planar geometry helpers a renderer needs
// to transform vertices and lay out flat shapes correctly.
//
// 🚀 What is vmath?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Dense matrices: validated construction, multiplication, transpose
//		• Vector transforms: y = A·x with strict shape checking
//		• Determinants: Gaussian elimination with partial pivoting
//		• Inverses: cofactor/adjugate method for small fixed shapes
//		• Plane projection: orthogonal projection of points onto planes
//		• Angular sorting: clockwise ordering of 2D point sets
//
// ✨ Why choose vmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – float32 throughout, documented precision policy
//   - Pure Go – no cgo, no hidden deps
//   - Strict validation – sentinel errors for every shape violation
//
// Everything lives in two subpackages:
//
//	matrix/ — dense float32 matrices and their algebraic kernels
//	geom/   — Vec2/Vec3 primitives, plane projection, clockwise point sort
//
// Quick ASCII example:
//
//	    ┌       ┐   ┌   ┐     ┌    ┐
//	    │ 1   2 │ × │ 5 │  =  │ 17 │
//	    │ 3   4 │   │ 6 │     │ 39 │
//	    └       ┘   └   ┘     └    ┘
//
// transforms a 2D vertex through a 2×2 matrix in one call.
//
//	go get github.com/katalvlaran/vmath
package vmath
