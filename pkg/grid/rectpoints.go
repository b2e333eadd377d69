package grid

import (
	"iter"

	"oatmeal/pkg/geom"
)

// RectPoints describes a rectangle of points by its top-left corner,
// row width, and row count. It owns no storage; iteration derives the
// points on demand, left to right then top to bottom.
type RectPoints struct {
	start  geom.Point
	xCount int
	yCount int
}

// NewRectPoints returns the descriptor for the xCount by yCount
// rectangle whose top-left point is start. Counts below 1 panic
// wrapping ErrInvalidDimension.
func NewRectPoints(start geom.Point, xCount, yCount int) RectPoints {
	if xCount < 1 || yCount < 1 {
		panic(dimensionErr(xCount, yCount))
	}
	return RectPoints{start: start, xCount: xCount, yCount: yCount}
}

// Start returns the top-left point.
func (r RectPoints) Start() geom.Point { return r.start }

// XCount returns the row width.
func (r RectPoints) XCount() int { return r.xCount }

// YCount returns the row count.
func (r RectPoints) YCount() int { return r.yCount }

// Len returns the number of points described.
func (r RectPoints) Len() int { return r.xCount * r.yCount }

// Contains reports whether p lies inside the rectangle.
func (r RectPoints) Contains(p geom.Point) bool {
	return p.X >= r.start.X && p.X < r.start.X+r.xCount &&
		p.Y >= r.start.Y && p.Y < r.start.Y+r.yCount
}

// Sentinel returns the point a finished cursor rests on: the start
// column, one row past the rectangle.
func (r RectPoints) Sentinel() geom.Point {
	return geom.Pt(r.start.X, r.start.Y+r.yCount)
}

// Cursor returns a cursor positioned on the rectangle's top-left
// point.
func (r RectPoints) Cursor() Cursor {
	return Cursor{cur: r.start, startX: r.start.X, xCount: r.xCount}
}

// All returns the rectangle's points as a lazy sequence. Each call
// restarts from the top-left.
func (r RectPoints) All() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		end := r.Sentinel()
		for c := r.Cursor(); c.Point() != end; c.Advance() {
			if !yield(c.Point()) {
				return
			}
		}
	}
}

// Cursor walks a RectPoints rectangle. The walk is finished when
// Point equals the rectangle's Sentinel; no separate flag is kept.
type Cursor struct {
	cur    geom.Point
	startX int
	xCount int
}

// Point returns the point under the cursor.
func (c Cursor) Point() geom.Point { return c.cur }

// Advance moves one point to the right, wrapping to the start of the
// next row past the right edge.
func (c *Cursor) Advance() {
	if c.cur.X < c.startX+c.xCount-1 {
		c.cur.X++
		return
	}
	c.cur.X = c.startX
	c.cur.Y++
}
