// Package day15 solves "Warehouse Woes": a robot pushing boxes around a warehouse.
package day15

import (
	"context"
	"fmt"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 15,
		Name:   "Warehouse Woes",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return gpsAfterMoves(in, false)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return gpsAfterMoves(in, true)
		},
	})
}

type tile uint8

const (
	floor tile = iota
	wall
	box
	boxLeft
	boxRight
	robot
)

var tiles = core.EnumCodec(map[rune]tile{
	'.': floor,
	'#': wall,
	'O': box,
	'[': boxLeft,
	']': boxRight,
	'@': robot,
})

type warehouse struct {
	grid  *core.Grid[tile]
	robot core.Coord
}

func newWarehouse(g *core.Grid[tile]) (*warehouse, error) {
	p, ok := core.Find(g, robot)
	if !ok {
		return nil, fmt.Errorf("day15: no robot in the warehouse")
	}
	return &warehouse{grid: g, robot: p}, nil
}

// widen doubles every tile horizontally; a box becomes a two-tile box.
func widen(g *core.Grid[tile]) *core.Grid[tile] {
	wide := core.NewFilled(core.C(g.Width()*2, g.Height()), floor)
	for p, t := range g.All() {
		left, right := t, t
		switch t {
		case box:
			left, right = boxLeft, boxRight
		case robot:
			right = floor
		}
		at := core.C(p.X*2, p.Y)
		wide.Set(at, left)
		wide.Set(at.Step(core.DirRight), right)
	}
	return wide
}

// move pushes the robot one step. Every tile in the pushed chain moves
// together, or nothing moves when any of them would hit a wall.
func (w *warehouse) move(d core.Dir) {
	chain := []core.Coord{w.robot}
	queued := map[core.Coord]bool{w.robot: true}
	push := func(p core.Coord) {
		if !queued[p] {
			queued[p] = true
			chain = append(chain, p)
		}
	}

	for i := 0; i < len(chain); i++ {
		next := chain[i].Step(d)
		switch w.grid.At(next) {
		case wall:
			return
		case box:
			push(next)
		case boxLeft:
			push(next)
			push(next.Step(core.DirRight))
		case boxRight:
			push(next)
			push(next.Step(core.DirLeft))
		}
	}

	moved := make([]tile, len(chain))
	for i, p := range chain {
		moved[i] = w.grid.At(p)
		w.grid.Set(p, floor)
	}
	for i, p := range chain {
		w.grid.Set(p.Step(d), moved[i])
	}
	w.robot = w.robot.Step(d)
}

// gps sums 100*y + x over every box, measured at its left edge.
func (w *warehouse) gps() int {
	sum := 0
	for p, t := range w.grid.All() {
		if t == box || t == boxLeft {
			sum += 100*p.Y + p.X
		}
	}
	return sum
}

func parseMoves(text string) ([]core.Dir, error) {
	var moves []core.Dir
	for _, r := range text {
		if r == '\n' || r == '\r' {
			continue
		}
		d, ok := core.ParseDir(r)
		if !ok {
			return nil, fmt.Errorf("day15: invalid move %q", r)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

func gpsAfterMoves(in registry.Input, wide bool) (registry.Answer, error) {
	sections := parse.Sections(in.Text)
	if len(sections) != 2 {
		return "", fmt.Errorf("day15: expected map and moves sections, got %d", len(sections))
	}
	g, err := core.Parse(sections[0], tiles)
	if err != nil {
		return "", fmt.Errorf("day15: %w", err)
	}
	if wide {
		g = widen(g)
	}
	w, err := newWarehouse(g)
	if err != nil {
		return "", err
	}
	moves, err := parseMoves(sections[1])
	if err != nil {
		return "", err
	}

	for _, d := range moves {
		w.move(d)
	}
	in.Logger().Debug("warehouse after moves", "moves", len(moves), "map", "\n"+w.grid.Render(tiles.Encode))
	return registry.Int(w.gps()), nil
}
