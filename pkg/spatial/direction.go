// Package spatial provides compass directions, connected tiles, and
// grid-search helpers built on geom and grid.
package spatial

import (
	"fmt"

	"oatmeal/pkg/geom"
)

// Direction is a cardinal compass heading.
type Direction uint8

// Cardinal headings in declaration order.
const (
	East Direction = iota
	North
	West
	South
)

// Point returns the unit point with the same heading, in screen
// coordinates (y grows southward).
func (d Direction) Point() geom.Point {
	switch d {
	case East:
		return geom.Pt(1, 0)
	case North:
		return geom.Pt(0, -1)
	case West:
		return geom.Pt(-1, 0)
	case South:
		return geom.Pt(0, 1)
	default:
		panic(fmt.Errorf("spatial: unknown direction %d", uint8(d)))
	}
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	switch d {
	case East:
		return West
	case North:
		return South
	case West:
		return East
	case South:
		return North
	default:
		panic(fmt.Errorf("spatial: unknown direction %d", uint8(d)))
	}
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Cardinal returns the four headings in declaration order. Search
// neighbor expansion follows this order.
func Cardinal() [4]Direction {
	return [4]Direction{East, North, West, South}
}

// DirectionFromPoint converts a unit point back to its heading. The
// second result is false for any non-unit point.
func DirectionFromPoint(p geom.Point) (Direction, bool) {
	switch p {
	case geom.Pt(1, 0):
		return East, true
	case geom.Pt(0, -1):
		return North, true
	case geom.Pt(-1, 0):
		return West, true
	case geom.Pt(0, 1):
		return South, true
	}
	return 0, false
}
