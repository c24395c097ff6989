// Package day16 solves "Reindeer Maze": the cheapest routes through a maze
// where turning costs far more than stepping.
package day16

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
	"github.com/vovakirdan/xmas/internal/search"
)

// ErrNoSolution is returned when the end tile cannot be reached.
var ErrNoSolution = errors.New("day16: no solution")

func init() {
	registry.Days(registry.Parts{
		Number: 16,
		Name:   "Reindeer Maze",
		Part1: func(ctx context.Context, in registry.Input) (registry.Answer, error) {
			res, err := solve(ctx, in.Text)
			if err != nil {
				return "", err
			}
			return registry.Int(res.cost), nil
		},
		Part2: func(ctx context.Context, in registry.Input) (registry.Answer, error) {
			res, err := solve(ctx, in.Text)
			if err != nil {
				return "", err
			}
			return registry.Int(res.tiles), nil
		},
	})
}

const (
	stepCost = 1
	turnCost = 1000
)

type state struct {
	pos core.Coord
	dir core.Dir
}

type crumb struct {
	state
	cost int
}

type result struct {
	cost  int
	tiles int // tiles on at least one cheapest route
}

// solve runs Dijkstra over (tile, facing) states. Equal-cost arrivals are all
// kept in the arena, so every cheapest route can be walked back afterwards.
func solve(ctx context.Context, text string) (result, error) {
	g, err := core.ParseBytes(text)
	if err != nil {
		return result{}, fmt.Errorf("day16: %w", err)
	}
	start, okS := core.Find(g, 'S')
	end, okE := core.Find(g, 'E')
	if !okS || !okE {
		return result{}, fmt.Errorf("day16: maze needs both S and E")
	}

	var arena search.Arena[crumb]
	best := make(map[state]int)
	open := core.NewMinQueue[int, int]()
	open.Push(arena.Add(crumb{state: state{start, core.DirRight}}, search.NoParent), 0)

	bestCost := -1
	var finishes []int
	for n := 0; open.Len() > 0; n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}
		item, _ := open.Pop()
		cur := arena.Get(item.Value)
		if bestCost >= 0 && cur.cost > bestCost {
			break
		}
		if known, ok := best[cur.state]; ok && cur.cost > known {
			continue
		}
		best[cur.state] = cur.cost

		if cur.pos == end {
			bestCost = cur.cost
			finishes = append(finishes, item.Value)
			continue
		}

		moves := []struct {
			dir  core.Dir
			cost int
		}{
			{cur.dir, stepCost},
			{cur.dir.Turn(core.RotateLeft), turnCost + stepCost},
			{cur.dir.Turn(core.RotateRight), turnCost + stepCost},
		}
		for _, m := range moves {
			next := cur.pos.Step(m.dir)
			if t, ok := g.Get(next); !ok || t == '#' {
				continue
			}
			c := crumb{state: state{next, m.dir}, cost: cur.cost + m.cost}
			if known, ok := best[c.state]; ok && c.cost > known {
				continue
			}
			open.Push(arena.Add(c, item.Value), c.cost)
		}
	}

	if bestCost < 0 {
		return result{}, ErrNoSolution
	}

	onRoute := mapset.New[core.Coord]()
	for _, idx := range finishes {
		for _, c := range arena.Ancestors(idx) {
			onRoute.Put(c.pos)
		}
	}
	return result{cost: bestCost, tiles: onRoute.Size()}, nil
}
