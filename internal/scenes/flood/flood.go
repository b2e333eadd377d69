// Package flood animates a breadth-first flood fill spreading from the
// center of a grid with scattered obstacles.
package flood

import (
	"image/color"
	"strconv"

	"oatmeal/internal/core"
	"oatmeal/pkg/geom"
	"oatmeal/pkg/grid"
	"oatmeal/pkg/spatial"
)

const (
	cellEmpty uint8 = 0
	cellWall  uint8 = 1
	// Ring cells start here and cycle through ringColors entries.
	cellRingBase uint8 = 2
)

const ringColors = 6

const unreached = -1

// Config holds parameters for the flood scene.
type Config struct {
	Width      int
	Height     int
	WallChance float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, WallChance: 0.35}
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
	if v, ok := cfg["walls"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.WallChance = parsed
		}
	}
	return c
}

// Flood computes wavefront rings once per Reset and reveals one ring
// per Step.
type Flood struct {
	cfg      Config
	img      *grid.Grid[uint8]
	rings    *grid.Grid[int]
	maxRing  int
	revealed int
}

// New returns a flood scene with the provided dimensions and default
// wall density.
func New(w, h int) *Flood {
	return NewWithConfig(Config{Width: w, Height: h, WallChance: DefaultConfig().WallChance})
}

// NewWithConfig returns a flood scene for the full configuration.
func NewWithConfig(cfg Config) *Flood {
	return &Flood{
		cfg:   cfg,
		img:   grid.New(cfg.Width, cfg.Height, cellEmpty),
		rings: grid.New(cfg.Width, cfg.Height, unreached),
	}
}

// Name returns the scene identifier.
func (f *Flood) Name() string { return "flood" }

// Size returns the grid dimensions.
func (f *Flood) Size() core.Size {
	return core.Size{W: f.img.XCount(), H: f.img.YCount()}
}

// Cells exposes the rendered grid values.
func (f *Flood) Cells() []uint8 { return f.img.Cells() }

// Palette maps empty cells, walls, and the cycling ring colors.
func (f *Flood) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 12, G: 12, B: 16, A: 255},
		{R: 90, G: 90, B: 98, A: 255},
		{R: 38, G: 70, B: 208, A: 255},
		{R: 52, G: 112, B: 226, A: 255},
		{R: 70, G: 152, B: 238, A: 255},
		{R: 96, G: 190, B: 246, A: 255},
		{R: 134, G: 220, B: 250, A: 255},
		{R: 182, G: 240, B: 252, A: 255},
	}
}

// Reset scatters walls from the seed and recomputes the wavefront
// rings from the center cell.
func (f *Flood) Reset(seed int64) {
	rng := core.NewRNG(seed)
	center := geom.Pt(f.cfg.Width/2, f.cfg.Height/2)

	f.img = grid.NewFunc(f.cfg.Width, f.cfg.Height, func(_, _ int) uint8 {
		if rng.Source().Float64() < f.cfg.WallChance {
			return cellWall
		}
		return cellEmpty
	})
	f.img.Set(center, cellEmpty)

	f.rings = grid.New(f.cfg.Width, f.cfg.Height, unreached)
	f.rings.Set(center, 0)
	f.maxRing = 0
	f.revealed = 0

	walk := spatial.NewBFS(f.img, center, func(b *spatial.BFS[uint8], _, to uint8, pos geom.Point, dir spatial.Direction) {
		if to == cellWall || f.rings.At(pos) != unreached {
			return
		}
		ring := f.rings.At(pos.Sub(dir.Point())) + 1
		f.rings.Set(pos, ring)
		if ring > f.maxRing {
			f.maxRing = ring
		}
		b.AddFrontier(pos)
	})
	walk.Run()
}

// Step reveals the next wavefront ring.
func (f *Flood) Step() {
	if f.revealed > f.maxRing {
		return
	}
	for p := range f.img.Points().All() {
		if f.rings.At(p) == f.revealed {
			f.img.Set(p, ringByte(f.revealed))
		}
	}
	f.revealed++
}

// ringByte maps a ring number onto the cycling ring palette values.
func ringByte(ring int) uint8 {
	return cellRingBase + uint8(ring%ringColors)
}

func init() {
	core.Register("flood", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
