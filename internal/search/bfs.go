package search

import "github.com/vovakirdan/xmas/internal/core"

// Distances returns the number of orthogonal steps from start to every
// reachable tile whose value satisfies passable. The start tile is always
// included at distance 0 when it lies inside the grid.
func Distances[T any](g *core.Grid[T], start core.Coord, passable func(T) bool) map[core.Coord]int {
	dist := make(map[core.Coord]int)
	if !g.IsInside(start) {
		return dist
	}
	dist[start] = 0
	queue := []core.Coord{start}

	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		for _, d := range core.Directions4 {
			q := p.Step(d)
			t, ok := g.Get(q)
			if !ok || !passable(t) {
				continue
			}
			if _, seen := dist[q]; seen {
				continue
			}
			dist[q] = dist[p] + 1
			queue = append(queue, q)
		}
	}
	return dist
}

// ShortestPath returns the number of orthogonal steps from start to end
// across passable tiles. ok is false when end is unreachable.
func ShortestPath[T any](g *core.Grid[T], start, end core.Coord, passable func(T) bool) (int, bool) {
	res, ok := Dijkstra(start, func(p core.Coord) []Step[core.Coord] {
		var steps []Step[core.Coord]
		for _, d := range core.Directions4 {
			q := p.Step(d)
			if t, ok := g.Get(q); ok && passable(t) {
				steps = append(steps, Step[core.Coord]{Node: q, Cost: 1})
			}
		}
		return steps
	}, func(p core.Coord) bool { return p == end })
	return res.Cost, ok
}
