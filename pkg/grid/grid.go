// Package grid provides a dense row-major 2D container addressed by
// geom.Point, plus lazy rectangular point sequences over it.
package grid

import (
	"iter"

	"oatmeal/pkg/geom"
)

// Grid is a dense row-major 2D container. Cell (x, y) lives at offset
// y*xCount + x. Dimensions are fixed at construction.
type Grid[T any] struct {
	xCount int
	yCount int
	cells  []T
}

// New returns an xCount by yCount grid with every cell set to value.
// Counts below 1 panic wrapping ErrInvalidDimension.
func New[T any](xCount, yCount int, value T) *Grid[T] {
	g := newEmpty[T](xCount, yCount)
	for i := range g.cells {
		g.cells[i] = value
	}
	return g
}

// NewFunc returns an xCount by yCount grid with each cell set to
// init(x, y). init runs exactly once per cell in row-major order, y
// outer ascending, x inner ascending. Counts below 1 panic wrapping
// ErrInvalidDimension.
func NewFunc[T any](xCount, yCount int, init func(x, y int) T) *Grid[T] {
	g := newEmpty[T](xCount, yCount)
	i := 0
	for y := 0; y < yCount; y++ {
		for x := 0; x < xCount; x++ {
			g.cells[i] = init(x, y)
			i++
		}
	}
	return g
}

func newEmpty[T any](xCount, yCount int) *Grid[T] {
	if xCount < 1 || yCount < 1 {
		panic(dimensionErr(xCount, yCount))
	}
	return &Grid[T]{xCount: xCount, yCount: yCount, cells: make([]T, xCount*yCount)}
}

// XCount returns the number of columns.
func (g *Grid[T]) XCount() int { return g.xCount }

// ColCount returns the number of columns.
func (g *Grid[T]) ColCount() int { return g.xCount }

// YCount returns the number of rows.
func (g *Grid[T]) YCount() int { return g.yCount }

// RowCount returns the number of rows.
func (g *Grid[T]) RowCount() int { return g.yCount }

// Count returns the total number of cells.
func (g *Grid[T]) Count() int { return len(g.cells) }

// ContainsPoint reports whether p addresses a cell of the grid.
func (g *Grid[T]) ContainsPoint(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.xCount && p.Y < g.yCount
}

// Index returns the row-major offset of p. Points outside the grid
// panic wrapping ErrOutOfBounds.
func (g *Grid[T]) Index(p geom.Point) int {
	if !g.ContainsPoint(p) {
		panic(boundsErr(p, g.xCount, g.yCount))
	}
	return p.Y*g.xCount + p.X
}

// At returns the cell at p. Points outside the grid panic wrapping
// ErrOutOfBounds.
func (g *Grid[T]) At(p geom.Point) T { return g.cells[g.Index(p)] }

// Set assigns the cell at p. Points outside the grid panic wrapping
// ErrOutOfBounds.
func (g *Grid[T]) Set(p geom.Point, v T) { g.cells[g.Index(p)] = v }

// Cells returns the backing slice in row-major order for in-place
// mutation. The slice is only valid while the grid is.
func (g *Grid[T]) Cells() []T { return g.cells }

// Values returns a lazy row-major sequence of all cell values. Each
// call restarts from the first cell.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Rows returns the row indexes [0, yCount).
func (g *Grid[T]) Rows() iter.Seq[int] { return g.RowRange(0, g.yCount) }

// RowRange returns the row indexes [start, start+count). Ranges that
// leave [0, yCount] panic wrapping ErrOutOfBounds at the call, before
// iteration begins.
func (g *Grid[T]) RowRange(start, count int) iter.Seq[int] {
	if start < 0 || count < 0 || start >= g.yCount || start+count > g.yCount {
		panic(rowRangeErr(start, count, g.yCount))
	}
	return func(yield func(int) bool) {
		for y := start; y < start+count; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

// Row returns the point descriptor for row y, left to right. Row
// indexes outside [0, yCount) panic wrapping ErrOutOfBounds.
func (g *Grid[T]) Row(y int) RectPoints {
	if y < 0 || y >= g.yCount {
		panic(rowErr(y, g.yCount))
	}
	return NewRectPoints(geom.Pt(0, y), g.xCount, 1)
}

// Column returns the point descriptor for column x, top to bottom.
// Column indexes outside [0, xCount) panic wrapping ErrOutOfBounds.
func (g *Grid[T]) Column(x int) RectPoints {
	if x < 0 || x >= g.xCount {
		panic(colErr(x, g.xCount))
	}
	return NewRectPoints(geom.Pt(x, 0), 1, g.yCount)
}

// Points returns the point descriptor covering the whole grid.
func (g *Grid[T]) Points() RectPoints {
	return NewRectPoints(geom.Pt(0, 0), g.xCount, g.yCount)
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
