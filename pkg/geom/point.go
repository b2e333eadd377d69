// Package geom provides fixed-arity coordinate value types: an
// exact-integer 2D Point and generic 2/3-component vectors with
// geometric operations. All types are plain values that can be copied
// freely, compared with ==, and used as map keys.
package geom

import "fmt"

// Point is an exact-integer 2D coordinate. The zero value is the
// origin. Components have no range restriction; overflow is int's
// overflow.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the point p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the point p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Neg returns the point with both components negated.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Mul returns the point with both components multiplied by s.
func (p Point) Mul(s int) Point { return Point{p.X * s, p.Y * s} }

// Div returns the point with both components divided by s. Division
// truncates toward zero.
func (p Point) Div(s int) Point { return Point{p.X / s, p.Y / s} }

// Mod returns the point with both components reduced modulo s. Each
// result component takes its dividend's sign.
func (p Point) Mod(s int) Point { return Point{p.X % s, p.Y % s} }

// Abs returns the point with the magnitude of each component.
func (p Point) Abs() Point {
	if p.X < 0 {
		p.X = -p.X
	}
	if p.Y < 0 {
		p.Y = -p.Y
	}
	return p
}

// Less reports whether p precedes q in the lexicographic (X, Y) order.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Component returns the component selected by index: 0 for X, 1 for Y.
// Any other index panics with an error wrapping ErrComponentIndex.
func (p Point) Component(index int) int {
	switch index {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		panic(componentErr("Point", index, 2))
	}
}

// SetComponent assigns the component selected by index: 0 for X, 1 for
// Y. Any other index panics with an error wrapping ErrComponentIndex.
func (p *Point) SetComponent(index, value int) {
	switch index {
	case 0:
		p.X = value
	case 1:
		p.Y = value
	default:
		panic(componentErr("Point", index, 2))
	}
}

// Hash returns a hash consistent with ==: equal points hash equally.
func (p Point) Hash() uint64 {
	h1 := scalarHash(p.X)
	h2 := scalarHash(p.Y)
	return h1 ^ (h2 << 1)
}

// String formats the point as "X, Y".
func (p Point) String() string { return fmt.Sprintf("%d, %d", p.X, p.Y) }

// GoString formats the point as "Point(x=X, y=Y)".
func (p Point) GoString() string { return fmt.Sprintf("Point(x=%d, y=%d)", p.X, p.Y) }
