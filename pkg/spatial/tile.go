package spatial

import "math/bits"

// ConnectedTile is a cell with a movement cost and per-direction open
// edges, stored as a bitmask with bit 1<<d for direction d.
type ConnectedTile struct {
	Cost  float64
	edges uint8
}

// NewConnectedTile returns a tile with the given cost and the listed
// edges open.
func NewConnectedTile(cost float64, dirs ...Direction) ConnectedTile {
	t := ConnectedTile{Cost: cost}
	t.SetEdges(true, dirs...)
	return t
}

// Edge reports whether the edge facing d is open.
func (t ConnectedTile) Edge(d Direction) bool { return t.edges&(1<<d) != 0 }

// Edges returns the raw edge bitmask.
func (t ConnectedTile) Edges() uint8 { return t.edges }

// EdgeCount returns the number of open edges.
func (t ConnectedTile) EdgeCount() int { return bits.OnesCount8(t.edges) }

// SetEdge opens or closes the edge facing d.
func (t *ConnectedTile) SetEdge(open bool, d Direction) {
	if open {
		t.edges |= 1 << d
	} else {
		t.edges &^= 1 << d
	}
}

// SetEdges opens or closes every listed edge.
func (t *ConnectedTile) SetEdges(open bool, dirs ...Direction) {
	for _, d := range dirs {
		t.SetEdge(open, d)
	}
}

// AllEdges reports whether every listed edge is open. With no
// arguments it reports whether all four are.
func (t ConnectedTile) AllEdges(dirs ...Direction) bool {
	if len(dirs) == 0 {
		return t.edges == 0b1111
	}
	for _, d := range dirs {
		if !t.Edge(d) {
			return false
		}
	}
	return true
}

// AnyEdge reports whether any listed edge is open. With no arguments
// it reports whether any edge at all is.
func (t ConnectedTile) AnyEdge(dirs ...Direction) bool {
	if len(dirs) == 0 {
		return t.edges != 0
	}
	for _, d := range dirs {
		if t.Edge(d) {
			return true
		}
	}
	return false
}
