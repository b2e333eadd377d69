// Package life implements Conway's Game of Life on a toroidal board.
package life

import (
	"image/color"
	"strconv"

	"oatmeal/internal/core"
	"oatmeal/pkg/grid"
)

// Config holds parameters for the Life scene.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 192, Height: 128}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cur *grid.Grid[uint8]
	nxt *grid.Grid[uint8]
}

// New returns a Life scene with the provided dimensions.
func New(w, h int) *Life {
	return &Life{
		cur: grid.New[uint8](w, h, 0),
		nxt: grid.New[uint8](w, h, 0),
	}
}

// Name returns the scene identifier.
func (l *Life) Name() string { return "life" }

// Size returns the board dimensions.
func (l *Life) Size() core.Size {
	return core.Size{W: l.cur.XCount(), H: l.cur.YCount()}
}

// Cells exposes the current board values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Palette maps dead cells to black and live cells to white.
func (l *Life) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur.Cells())
}

// Step advances the board by one generation.
func (l *Life) Step() {
	w, h := l.cur.XCount(), l.cur.YCount()
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Scene {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
