// SPDX-License-Identifier: MIT

// Package geom: float32 vector value types. Every method returns a new value;
// vectors are never mutated, so sharing them across goroutines needs no
// coordination.
package geom

import "math"

// Vec2 represents a vector (or point) in 2-dimensional space.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns the sum of vectors a and b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the difference of vectors a and b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{X: s * a.X, Y: s * a.Y}
}

// Dot returns the dot product of the vectors a and b.
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length of the vector a.
func (a Vec2) Len() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y)))
}

// IsZero reports whether a is the zero vector.
func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// Vec3 represents a vector (or point) in 3-dimensional space.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Add returns the sum of vectors a and b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of the vectors a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length of the vector a.
func (a Vec3) Len() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y + a.Z*a.Z)))
}

// Norm returns the normalized form of the vector a.
// Precondition: a must be non-zero; normalizing the zero vector yields NaNs.
func (a Vec3) Norm() Vec3 {
	mag := a.Len()

	return Vec3{X: a.X / mag, Y: a.Y / mag, Z: a.Z / mag}
}

// IsZero reports whether a is the zero vector.
func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}
