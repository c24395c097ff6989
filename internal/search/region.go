package search

import "github.com/vovakirdan/xmas/internal/core"

// Region returns the orthogonally connected tiles holding the same value as
// start, in BFS order from start. It is empty when start is outside g.
func Region[T comparable](g *core.Grid[T], start core.Coord) []core.Coord {
	seen := core.NewGrid[bool](g.Size())
	return flood(g, start, seen)
}

// Regions partitions g into connected same-tile regions. Regions are ordered
// by the row-major position of their first tile.
func Regions[T comparable](g *core.Grid[T]) [][]core.Coord {
	seen := core.NewGrid[bool](g.Size())
	var regions [][]core.Coord
	for p := range g.Points() {
		if seen.At(p) {
			continue
		}
		regions = append(regions, flood(g, p, seen))
	}
	return regions
}

func flood[T comparable](g *core.Grid[T], start core.Coord, seen *core.Grid[bool]) []core.Coord {
	tile, ok := g.Get(start)
	if !ok {
		return nil
	}
	seen.Set(start, true)
	region := []core.Coord{start}

	for qi := 0; qi < len(region); qi++ {
		p := region[qi]
		for _, d := range core.Directions4 {
			q := p.Step(d)
			if t, ok := g.Get(q); !ok || t != tile || seen.At(q) {
				continue
			}
			seen.Set(q, true)
			region = append(region, q)
		}
	}
	return region
}
