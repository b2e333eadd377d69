package maze

import (
	"testing"

	"oatmeal/internal/core"
	"oatmeal/pkg/geom"
	"oatmeal/pkg/grid"
	"oatmeal/pkg/spatial"
)

func TestGenerateReachesEveryTile(t *testing.T) {
	tiles := Generate(8, 6, core.NewRNG(3))

	walk := spatial.NewBFS(tiles, geom.Pt(0, 0), func(b *spatial.BFS[spatial.ConnectedTile], from, to spatial.ConnectedTile, pos geom.Point, dir spatial.Direction) {
		if from.Edge(dir) {
			b.AddFrontier(pos)
		}
	})
	walk.Run()

	if got := walk.VisitedCount(); got != 8*6 {
		t.Fatalf("reachable tiles = %d, want %d", got, 8*6)
	}
}

func TestGenerateEdgesArePaired(t *testing.T) {
	tiles := Generate(7, 7, core.NewRNG(12))

	for p := range tiles.Points().All() {
		tile := tiles.At(p)
		for _, d := range spatial.Cardinal() {
			if !tile.Edge(d) {
				continue
			}
			next := p.Add(d.Point())
			if !tiles.ContainsPoint(next) {
				t.Fatalf("tile (%v) has open edge %v leaving the grid", p, d)
			}
			if !tiles.At(next).Edge(d.Reverse()) {
				t.Fatalf("edge %v of (%v) is open but the paired edge is not", d, p)
			}
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(6, 5, core.NewRNG(42))
	b := Generate(6, 5, core.NewRNG(42))
	c := Generate(6, 5, core.NewRNG(43))

	same := true
	for p := range a.Points().All() {
		if a.At(p).Edges() != b.At(p).Edges() {
			t.Fatalf("tile (%v) differs across equal seeds", p)
		}
		if a.At(p).Edges() != c.At(p).Edges() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical mazes")
	}
}

func TestSolveFindsValidPath(t *testing.T) {
	tiles := Generate(6, 5, core.NewRNG(11))
	start, goal := geom.Pt(0, 0), geom.Pt(5, 4)

	path, ok := Solve(tiles, start, goal)
	if !ok {
		t.Fatal("generated maze was not solvable")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path endpoints = (%v), (%v); want (%v), (%v)",
			path[0], path[len(path)-1], start, goal)
	}

	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if spatial.Manhattan(from, to) != 1 {
			t.Fatalf("path step %d: (%v) -> (%v) is not a unit move", i, from, to)
		}
		d, ok := spatial.DirectionFromPoint(to.Sub(from))
		if !ok || !tiles.At(from).Edge(d) {
			t.Fatalf("path step %d: (%v) -> (%v) crosses a closed edge", i, from, to)
		}
	}
}

func TestSolveBlocked(t *testing.T) {
	tiles := grid.New(2, 1, spatial.NewConnectedTile(1))
	_, ok := Solve(tiles, geom.Pt(0, 0), geom.Pt(1, 0))
	if ok {
		t.Fatal("solve succeeded through closed edges")
	}
}

func TestRasterize(t *testing.T) {
	tiles := grid.New(2, 1, spatial.NewConnectedTile(1))
	left := tiles.At(geom.Pt(0, 0))
	left.SetEdge(true, spatial.East)
	tiles.Set(geom.Pt(0, 0), left)
	right := tiles.At(geom.Pt(1, 0))
	right.SetEdge(true, spatial.West)
	tiles.Set(geom.Pt(1, 0), right)

	img := Rasterize(tiles)
	if img.XCount() != 5 || img.YCount() != 3 {
		t.Fatalf("rasterized size = %dx%d, want 5x3", img.XCount(), img.YCount())
	}

	floors := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(3, 1)}
	for _, p := range floors {
		if img.At(p) != cellFloor {
			t.Fatalf("cell (%v) = %d, want floor", p, img.At(p))
		}
	}
	for p := range img.Points().All() {
		if p.Y == 0 || p.Y == 2 || p.X == 0 || p.X == 4 {
			if img.At(p) != cellWall {
				t.Fatalf("border cell (%v) = %d, want wall", p, img.At(p))
			}
		}
	}
}

func TestSceneRevealsWholePath(t *testing.T) {
	m := New(4, 3)
	m.Reset(7)

	if len(m.path) == 0 {
		t.Fatal("reset did not produce a solved path")
	}

	countPath := func() int {
		n := 0
		for _, c := range m.Cells() {
			if c == cellPath {
				n++
			}
		}
		return n
	}

	if countPath() != 0 {
		t.Fatal("path cells visible before any step")
	}

	for i := 0; i < len(m.path)+5; i++ {
		m.Step()
	}

	want := 2*len(m.path) - 3
	if got := countPath(); got != want {
		t.Fatalf("revealed path cells = %d, want %d", got, want)
	}

	endpoints := 0
	for _, c := range m.Cells() {
		if c == cellEndpoint {
			endpoints++
		}
	}
	if endpoints != 2 {
		t.Fatalf("endpoint cells = %d, want 2", endpoints)
	}
}
