package grid

import (
	"errors"
	"fmt"

	"oatmeal/pkg/geom"
)

// ErrOutOfBounds reports point, row, or range access outside the grid.
var ErrOutOfBounds = errors.New("out of grid bounds")

// ErrInvalidDimension reports construction with a cell count below 1.
var ErrInvalidDimension = errors.New("invalid dimension")

func boundsErr(p geom.Point, xCount, yCount int) error {
	return fmt.Errorf("%w: point (%v) outside %dx%d grid", ErrOutOfBounds, p, xCount, yCount)
}

func rowRangeErr(start, count, yCount int) error {
	return fmt.Errorf("%w: rows [%d, %d) outside %d rows", ErrOutOfBounds, start, start+count, yCount)
}

func rowErr(y, yCount int) error {
	return fmt.Errorf("%w: row %d outside %d rows", ErrOutOfBounds, y, yCount)
}

func colErr(x, xCount int) error {
	return fmt.Errorf("%w: column %d outside %d columns", ErrOutOfBounds, x, xCount)
}

func dimensionErr(xCount, yCount int) error {
	return fmt.Errorf("%w: %dx%d, want both counts >= 1", ErrInvalidDimension, xCount, yCount)
}
