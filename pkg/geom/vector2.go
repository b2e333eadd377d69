package geom

import (
	"fmt"
	"math"
)

// Vec2 is a generic two-component coordinate vector. The zero value is
// the zero vector. Operations whose meaning depends on T's numeric
// semantics live as constrained free functions: Mod2 for integer T,
// Normalize2 for float T.
type Vec2[T Scalar] struct {
	X, Y T
}

// Instantiations for the common component types.
type (
	Vec2i = Vec2[int]
	Vec2f = Vec2[float64]
)

// V2 is shorthand for Vec2[T]{x, y}.
func V2[T Scalar](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// Zero2 returns the zero vector (0, 0).
func Zero2[T Scalar]() Vec2[T] { return Vec2[T]{0, 0} }

// One2 returns the vector (1, 1).
func One2[T Scalar]() Vec2[T] { return Vec2[T]{1, 1} }

// UnitX2 returns the unit vector (1, 0).
func UnitX2[T Scalar]() Vec2[T] { return Vec2[T]{1, 0} }

// UnitY2 returns the unit vector (0, 1).
func UnitY2[T Scalar]() Vec2[T] { return Vec2[T]{0, 1} }

// Add returns the vector v+w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }

// Sub returns the vector v-w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }

// Neg returns the vector with both components negated.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Mul returns the vector scaled by s.
func (v Vec2[T]) Mul(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div returns the vector with both components divided by s. Integer
// components truncate toward zero.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Dot returns the dot product of v and w, exact in T.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.X*w.X + v.Y*w.Y }

// LengthSquared returns the squared length of v, exact in T.
func (v Vec2[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y }

// Length returns the length of v at float64 precision regardless of
// the storage type T.
func (v Vec2[T]) Length() float64 { return math.Sqrt(float64(v.LengthSquared())) }

// Less reports whether v precedes w in the lexicographic (X, Y) order.
func (v Vec2[T]) Less(w Vec2[T]) bool {
	return v.X < w.X || (v.X == w.X && v.Y < w.Y)
}

// Component returns the component selected by index: 0 for X, 1 for Y.
// Any other index panics with an error wrapping ErrComponentIndex.
func (v Vec2[T]) Component(index int) T {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(componentErr("Vec2", index, 2))
	}
}

// SetComponent assigns the component selected by index: 0 for X, 1 for
// Y. Any other index panics with an error wrapping ErrComponentIndex.
func (v *Vec2[T]) SetComponent(index int, value T) {
	switch index {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(componentErr("Vec2", index, 2))
	}
}

// Hash returns a hash consistent with ==: equal vectors hash equally.
func (v Vec2[T]) Hash() uint64 {
	h := scalarHash(v.X)
	h ^= scalarHash(v.Y) + 0x9e3779b9 + (h << 6) + (h >> 2)
	return h
}

// String formats the vector as "X, Y".
func (v Vec2[T]) String() string { return fmt.Sprintf("%v, %v", v.X, v.Y) }

// GoString formats the vector as "Vec2(x=X, y=Y)".
func (v Vec2[T]) GoString() string { return fmt.Sprintf("Vec2(x=%v, y=%v)", v.X, v.Y) }
