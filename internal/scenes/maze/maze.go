// Package maze generates perfect mazes, solves them, and animates the
// solution as a scene.
package maze

import (
	"image/color"
	"strconv"

	"oatmeal/internal/core"
	"oatmeal/pkg/geom"
	"oatmeal/pkg/grid"
	"oatmeal/pkg/spatial"
)

// Cell values in the rasterized byte grid.
const (
	cellWall uint8 = iota
	cellFloor
	cellPath
	cellEndpoint
)

// Config holds parameters for the maze scene, in tile units. The
// rendered grid is (2*Width+1) by (2*Height+1).
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 32, Height: 24}
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

// Generate carves a perfect maze over a w by h tile grid using
// recursive backtracking. Carving a passage opens the paired edges of
// both tiles. Every tile gets movement cost 1.
func Generate(w, h int, rng *core.RNG) *grid.Grid[spatial.ConnectedTile] {
	tiles := grid.New(w, h, spatial.NewConnectedTile(1))
	visited := grid.New(w, h, false)

	start := geom.Pt(0, 0)
	visited.Set(start, true)
	stack := []geom.Point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var open []spatial.Direction
		for _, d := range spatial.Cardinal() {
			next := cur.Add(d.Point())
			if tiles.ContainsPoint(next) && !visited.At(next) {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := open[rng.IntN(len(open))]
		next := cur.Add(d.Point())

		from := tiles.At(cur)
		from.SetEdge(true, d)
		tiles.Set(cur, from)

		to := tiles.At(next)
		to.SetEdge(true, d.Reverse())
		tiles.Set(next, to)

		visited.Set(next, true)
		stack = append(stack, next)
	}
	return tiles
}

// Solve finds the shortest start-to-goal walk through the maze's open
// edges. The returned path is in tile coordinates, inclusive of both
// endpoints.
func Solve(tiles *grid.Grid[spatial.ConnectedTile], start, goal geom.Point) ([]geom.Point, bool) {
	cost := func(g *grid.Grid[spatial.ConnectedTile], from, to geom.Point) (float64, bool) {
		d, ok := spatial.DirectionFromPoint(to.Sub(from))
		if !ok || !g.At(from).Edge(d) {
			return 0, false
		}
		return g.At(to).Cost, true
	}
	estimate := func(from, to geom.Point) float64 {
		return float64(spatial.Manhattan(from, to))
	}
	return spatial.AStar(tiles, start, goal, cost, estimate)
}

// Rasterize draws the maze as a byte grid of walls and floors, one
// image cell per tile plus one per wall.
func Rasterize(tiles *grid.Grid[spatial.ConnectedTile]) *grid.Grid[uint8] {
	img := grid.New(2*tiles.XCount()+1, 2*tiles.YCount()+1, cellWall)
	for p := range tiles.Points().All() {
		c := tileToImage(p)
		img.Set(c, cellFloor)

		t := tiles.At(p)
		if t.Edge(spatial.East) {
			img.Set(c.Add(spatial.East.Point()), cellFloor)
		}
		if t.Edge(spatial.South) {
			img.Set(c.Add(spatial.South.Point()), cellFloor)
		}
	}
	return img
}

// tileToImage maps a tile coordinate to its image cell.
func tileToImage(p geom.Point) geom.Point {
	return geom.Pt(2*p.X+1, 2*p.Y+1)
}

// Maze is a scene that regrows a maze on Reset and reveals the solved
// path one tile per Step.
type Maze struct {
	cfg   Config
	img   *grid.Grid[uint8]
	path  []geom.Point
	shown int
}

// New returns a maze scene of w by h tiles.
func New(w, h int) *Maze {
	m := &Maze{cfg: Config{Width: w, Height: h}}
	m.img = grid.New(2*w+1, 2*h+1, cellWall)
	return m
}

// Name returns the scene identifier.
func (m *Maze) Name() string { return "maze" }

// Size returns the rendered grid dimensions.
func (m *Maze) Size() core.Size {
	return core.Size{W: m.img.XCount(), H: m.img.YCount()}
}

// Cells exposes the rendered grid values.
func (m *Maze) Cells() []uint8 { return m.img.Cells() }

// Palette maps walls, floors, the revealed path, and the endpoints.
func (m *Maze) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 24, G: 24, B: 24, A: 255},
		{R: 236, G: 236, B: 236, A: 255},
		{R: 66, G: 135, B: 245, A: 255},
		{R: 245, G: 90, B: 66, A: 255},
	}
}

// Reset regenerates and solves the maze from the provided seed.
func (m *Maze) Reset(seed int64) {
	rng := core.NewRNG(seed)
	tiles := Generate(m.cfg.Width, m.cfg.Height, rng)

	start := geom.Pt(0, 0)
	goal := geom.Pt(m.cfg.Width-1, m.cfg.Height-1)
	path, ok := Solve(tiles, start, goal)
	if !ok {
		path = nil
	}

	m.img = Rasterize(tiles)
	m.path = path
	m.shown = 0

	m.img.Set(tileToImage(start), cellEndpoint)
	m.img.Set(tileToImage(goal), cellEndpoint)
}

// Step reveals the next cell of the solved path.
func (m *Maze) Step() {
	if m.shown >= len(m.path) {
		return
	}
	cur := tileToImage(m.path[m.shown])
	if m.img.At(cur) == cellFloor {
		m.img.Set(cur, cellPath)
	}
	if m.shown > 0 {
		prev := tileToImage(m.path[m.shown-1])
		mid := prev.Add(cur.Sub(prev).Div(2))
		if m.img.At(mid) == cellFloor {
			m.img.Set(mid, cellPath)
		}
	}
	m.shown++
}

func init() {
	core.Register("maze", func(cfg map[string]string) core.Scene {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
