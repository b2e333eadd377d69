package grid

import (
	"errors"
	"fmt"
)

// FromLines builds a byte grid from equal-length text lines, one cell
// per byte, one row per line. Empty input and ragged lines are
// returned as errors.
func FromLines(lines []string) (*Grid[byte], error) {
	if len(lines) == 0 {
		return nil, errors.New("grid: no input lines")
	}
	width := len(lines[0])
	if width == 0 {
		return nil, errors.New("grid: empty first line")
	}
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("grid: line %d is %d bytes, want %d", i, len(line), width)
		}
	}
	g := New[byte](width, len(lines), 0)
	for y, line := range lines {
		copy(g.cells[y*width:], line)
	}
	return g, nil
}
