// Package day06 solves "Guard Gallivant": predicting a patrolling guard.
package day06

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 6,
		Name:   "Guard Gallivant",
		Part1:  visitedTiles,
		Part2:  loopObstructions,
	})
}

type lab struct {
	grid  *core.Grid[byte]
	start core.Coord
	dir   core.Dir
}

func parseLab(text string) (*lab, error) {
	g, err := core.ParseBytes(text)
	if err != nil {
		return nil, fmt.Errorf("day06: %w", err)
	}
	for p, b := range g.All() {
		if d, ok := core.ParseDir(rune(b)); ok {
			return &lab{grid: g, start: p, dir: d}, nil
		}
	}
	return nil, fmt.Errorf("day06: no guard on the map")
}

func (l *lab) blocked(p, obstruction core.Coord) bool {
	return p == obstruction || l.grid.At(p) == '#'
}

// patrol walks the guard until it leaves the map or repeats a state.
// It returns the visited tiles and whether the guard got stuck in a loop.
// obstruction is an extra blocked tile; pass a point outside the map for none.
func (l *lab) patrol(obstruction core.Coord) (*core.Grid[uint8], bool) {
	// One bit per direction the guard has faced on a tile.
	seen := core.NewGrid[uint8](l.grid.Size())
	p, d := l.start, l.dir
	for {
		cell := seen.Ptr(p)
		if cell == nil {
			return seen, false
		}
		bit := uint8(1) << d
		if *cell&bit != 0 {
			return seen, true
		}
		*cell |= bit

		next := p.Step(d)
		if l.blocked(next, obstruction) {
			d = d.Turn(core.RotateRight)
			continue
		}
		p = next
	}
}

func visitedTiles(_ context.Context, in registry.Input) (registry.Answer, error) {
	l, err := parseLab(in.Text)
	if err != nil {
		return "", err
	}
	seen, _ := l.patrol(core.C(-1, -1))
	return registry.Int(seen.CountFunc(func(b uint8) bool { return b != 0 })), nil
}

// loopObstructions counts the tiles on the guard's route where a single new
// obstruction would trap the guard in a loop.
func loopObstructions(ctx context.Context, in registry.Input) (registry.Answer, error) {
	l, err := parseLab(in.Text)
	if err != nil {
		return "", err
	}
	seen, _ := l.patrol(core.C(-1, -1))

	var candidates []core.Coord
	for p, b := range seen.All() {
		if b != 0 && p != l.start {
			candidates = append(candidates, p)
		}
	}

	workers := in.Config.Day06.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := in.Logger()
	log.Debug("checking obstructions", "candidates", len(candidates), "workers", workers)

	var loops atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, loop := l.patrol(c); loop {
				loops.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("day06: %w", err)
	}

	log.Debug("obstructions checked", "loops", loops.Load())
	return registry.Int(loops.Load()), nil
}
