package spatial

import (
	"fmt"
	"slices"

	"oatmeal/pkg/geom"
	"oatmeal/pkg/grid"
)

// Manhattan returns |dx| + |dy| between a and b.
func Manhattan(a, b geom.Point) int {
	d := a.Sub(b).Abs()
	return d.X + d.Y
}

// CostFunc prices a move between two adjacent cells. Returning false
// marks the move impassable.
type CostFunc[T any] func(g *grid.Grid[T], from, to geom.Point) (float64, bool)

// HeuristicFunc estimates the remaining cost of a move. Estimates must
// be positive.
type HeuristicFunc func(from, to geom.Point) float64

// AStar returns a shortest path from start to goal, inclusive of both
// endpoints. cost prices each candidate move; heuristic, when non-nil,
// guides the search and must return positive estimates. Neighbors
// expand in Cardinal order with cost ties broken first-in first-out,
// so the returned path is deterministic. The second result is false
// when no path exists. Non-positive costs or estimates panic; a start
// or goal outside g panics wrapping grid.ErrOutOfBounds.
func AStar[T any](g *grid.Grid[T], start, goal geom.Point, cost CostFunc[T], heuristic HeuristicFunc) ([]geom.Point, bool) {
	// Index panics when an endpoint is outside the grid.
	g.Index(start)
	g.Index(goal)

	var frontier PriorityQueue[geom.Point]
	frontier.Add(start, 0)

	costSoFar := map[geom.Point]float64{start: 0}
	cameFrom := map[geom.Point]geom.Point{}
	reached := false

	for !frontier.Empty() {
		cur := frontier.Pop()
		if cur == goal {
			reached = true
			break
		}

		for _, d := range Cardinal() {
			next := cur.Add(d.Point())
			if !g.ContainsPoint(next) {
				continue
			}

			moveCost, ok := cost(g, cur, next)
			if !ok {
				continue
			}
			if moveCost <= 0 {
				panic(fmt.Errorf("spatial: cost %v for move (%v) -> (%v), want > 0", moveCost, cur, next))
			}

			newCost := costSoFar[cur] + moveCost
			if old, seen := costSoFar[next]; seen && newCost >= old {
				continue
			}
			costSoFar[next] = newCost

			estimate := newCost
			if heuristic != nil {
				h := heuristic(cur, next)
				if h <= 0 {
					panic(fmt.Errorf("spatial: heuristic %v for move (%v) -> (%v), want > 0", h, cur, next))
				}
				estimate += h
			}
			frontier.Add(next, estimate)
			cameFrom[next] = cur
		}
	}

	if !reached {
		return nil, false
	}

	path := []geom.Point{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path, true
}

// VisitFunc examines a neighboring cell during a breadth-first walk
// and decides whether to keep exploring through it via AddFrontier.
type VisitFunc[T any] func(b *BFS[T], from, to T, pos geom.Point, dir Direction)

// BFS walks a grid breadth first from a start point. Cells are marked
// visited when popped from the FIFO frontier; the visit callback runs
// for every unvisited in-bounds cardinal neighbor of the popped cell.
type BFS[T any] struct {
	g        *grid.Grid[T]
	start    geom.Point
	visit    VisitFunc[T]
	frontier []geom.Point
	visited  map[geom.Point]bool
}

// NewBFS returns a walker over g rooted at start. A start outside g
// panics wrapping grid.ErrOutOfBounds.
func NewBFS[T any](g *grid.Grid[T], start geom.Point, visit VisitFunc[T]) *BFS[T] {
	g.Index(start)
	return &BFS[T]{g: g, start: start, visit: visit, visited: map[geom.Point]bool{}}
}

// Run restarts the walk from the start point and drains the frontier.
func (b *BFS[T]) Run() {
	b.frontier = b.frontier[:0]
	clear(b.visited)
	b.frontier = append(b.frontier, b.start)

	for len(b.frontier) > 0 {
		cur := b.frontier[0]
		b.frontier = b.frontier[1:]
		b.visited[cur] = true

		for _, d := range Cardinal() {
			next := cur.Add(d.Point())
			if !b.g.ContainsPoint(next) || b.visited[next] {
				continue
			}
			b.visit(b, b.g.At(cur), b.g.At(next), next, d)
		}
	}
}

// AddFrontier queues p for exploration. Already-visited points panic;
// points outside the grid panic wrapping grid.ErrOutOfBounds.
func (b *BFS[T]) AddFrontier(p geom.Point) {
	if b.visited[p] {
		panic(fmt.Errorf("spatial: point (%v) already visited", p))
	}
	b.g.Index(p)
	b.frontier = append(b.frontier, p)
}

// Visited reports whether p has been popped and explored.
func (b *BFS[T]) Visited(p geom.Point) bool { return b.visited[p] }

// VisitedCount returns the number of explored points.
func (b *BFS[T]) VisitedCount() int { return len(b.visited) }
