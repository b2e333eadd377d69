package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs2 returns v with each component replaced by its magnitude.
func Abs2[T Scalar](v Vec2[T]) Vec2[T] {
	return Vec2[T]{absScalar(v.X), absScalar(v.Y)}
}

// Abs3 returns v with each component replaced by its magnitude.
func Abs3[T Scalar](v Vec3[T]) Vec3[T] {
	return Vec3[T]{absScalar(v.X), absScalar(v.Y), absScalar(v.Z)}
}

// DistanceSquared2 returns the squared distance between a and b, exact
// in T.
func DistanceSquared2[T Scalar](a, b Vec2[T]) T {
	return a.Sub(b).LengthSquared()
}

// DistanceSquared3 returns the squared distance between a and b, exact
// in T.
func DistanceSquared3[T Scalar](a, b Vec3[T]) T {
	return a.Sub(b).LengthSquared()
}

// Distance2 returns the Euclidean distance between a and b at float64
// precision.
func Distance2[T Scalar](a, b Vec2[T]) float64 {
	return a.Sub(b).Length()
}

// Distance3 returns the Euclidean distance between a and b at float64
// precision.
func Distance3[T Scalar](a, b Vec3[T]) float64 {
	return a.Sub(b).Length()
}

// Mod2 returns v with each component reduced modulo s. The remainder
// takes the sign of the dividend, matching Go's % operator.
func Mod2[T constraints.Integer](v Vec2[T], s T) Vec2[T] {
	return Vec2[T]{v.X % s, v.Y % s}
}

// Mod3 returns v with each component reduced modulo s. The remainder
// takes the sign of the dividend, matching Go's % operator.
func Mod3[T constraints.Integer](v Vec3[T], s T) Vec3[T] {
	return Vec3[T]{v.X % s, v.Y % s, v.Z % s}
}

// Normalize2 returns v scaled to length 1. The zero vector normalizes
// to componentwise NaN (0 times +Inf), not an error.
func Normalize2[T constraints.Float](v Vec2[T]) Vec2[T] {
	inv := 1 / math.Sqrt(float64(v.LengthSquared()))
	return Vec2[T]{T(float64(v.X) * inv), T(float64(v.Y) * inv)}
}

// Normalize3 returns v scaled to length 1. The zero vector normalizes
// to componentwise NaN (0 times +Inf), not an error.
func Normalize3[T constraints.Float](v Vec3[T]) Vec3[T] {
	inv := 1 / math.Sqrt(float64(v.LengthSquared()))
	return Vec3[T]{T(float64(v.X) * inv), T(float64(v.Y) * inv), T(float64(v.Z) * inv)}
}
