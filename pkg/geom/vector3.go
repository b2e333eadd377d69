package geom

import (
	"fmt"
	"math"
)

// Vec3 is a generic three-component coordinate vector. The zero value
// is the zero vector. Mod3 and Normalize3 are the constrained free
// functions for the T-dependent operations.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Instantiations for the common component types.
type (
	Vec3i = Vec3[int]
	Vec3f = Vec3[float64]
)

// V3 is shorthand for Vec3[T]{x, y, z}.
func V3[T Scalar](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Zero3 returns the zero vector (0, 0, 0).
func Zero3[T Scalar]() Vec3[T] { return Vec3[T]{0, 0, 0} }

// One3 returns the vector (1, 1, 1).
func One3[T Scalar]() Vec3[T] { return Vec3[T]{1, 1, 1} }

// UnitX3 returns the unit vector (1, 0, 0).
func UnitX3[T Scalar]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// UnitY3 returns the unit vector (0, 1, 0).
func UnitY3[T Scalar]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// UnitZ3 returns the unit vector (0, 0, 1).
func UnitZ3[T Scalar]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Add returns the vector v+w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the vector v-w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Neg returns the vector with all components negated.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Mul returns the vector scaled by s.
func (v Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div returns the vector with all components divided by s. Integer
// components truncate toward zero.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the dot product of v and w, exact in T.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the right-handed cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns the squared length of v, exact in T.
func (v Vec3[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the length of v at float64 precision regardless of
// the storage type T.
func (v Vec3[T]) Length() float64 { return math.Sqrt(float64(v.LengthSquared())) }

// Less reports whether v precedes w in the lexicographic (X, Y, Z)
// order.
func (v Vec3[T]) Less(w Vec3[T]) bool {
	if v.X != w.X {
		return v.X < w.X
	}
	if v.Y != w.Y {
		return v.Y < w.Y
	}
	return v.Z < w.Z
}

// Component returns the component selected by index: 0 for X, 1 for Y,
// 2 for Z. Any other index panics with an error wrapping
// ErrComponentIndex.
func (v Vec3[T]) Component(index int) T {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(componentErr("Vec3", index, 3))
	}
}

// SetComponent assigns the component selected by index: 0 for X, 1 for
// Y, 2 for Z. Any other index panics with an error wrapping
// ErrComponentIndex.
func (v *Vec3[T]) SetComponent(index int, value T) {
	switch index {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(componentErr("Vec3", index, 3))
	}
}

// Hash returns a hash consistent with ==: equal vectors hash equally.
func (v Vec3[T]) Hash() uint64 {
	h := scalarHash(v.X)
	h ^= scalarHash(v.Y) + 0x9e3779b9 + (h << 6) + (h >> 2)
	h ^= scalarHash(v.Z) + 0x9e3779b9 + (h << 6) + (h >> 2)
	return h
}

// String formats the vector as "X, Y, Z".
func (v Vec3[T]) String() string { return fmt.Sprintf("%v, %v, %v", v.X, v.Y, v.Z) }

// GoString formats the vector as "Vec3(x=X, y=Y, z=Z)".
func (v Vec3[T]) GoString() string {
	return fmt.Sprintf("Vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
