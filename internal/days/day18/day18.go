// Package day18 solves "RAM Run": escaping a memory space as bytes fall into it.
package day18

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
	"github.com/vovakirdan/xmas/internal/search"
)

// ErrNoSolution is returned when the exit is unreachable, or never becomes so.
var ErrNoSolution = errors.New("day18: no solution")

func init() {
	registry.Days(registry.Parts{
		Number: 18,
		Name:   "RAM Run",
		Part1:  shortestExit,
		Part2:  firstBlockingByte,
	})
}

func parseBytes(text string, size int) ([]core.Coord, error) {
	var falling []core.Coord
	for i, line := range parse.Lines(text) {
		nums, err := parse.Ints(line)
		if err != nil || len(nums) != 2 {
			return nil, fmt.Errorf("day18: malformed byte %d: %q", i+1, line)
		}
		p := core.C(nums[0], nums[1])
		if !core.NewRect(0, 0, size, size).Contains(p) {
			return nil, fmt.Errorf("day18: byte %d at %v is outside the memory space", i+1, p)
		}
		falling = append(falling, p)
	}
	return falling, nil
}

// memory returns the corrupted-tile grid after the first n bytes fell.
func memory(falling []core.Coord, size, n int) *core.Grid[bool] {
	g := core.NewGrid[bool](core.C(size, size))
	for _, p := range falling[:n] {
		g.Set(p, true)
	}
	return g
}

func escape(g *core.Grid[bool]) (int, bool) {
	exit := g.Size().Sub(core.One)
	return search.ShortestPath(g, core.Zero, exit, func(corrupted bool) bool { return !corrupted })
}

func setup(in registry.Input) ([]core.Coord, int, error) {
	size := in.Config.Day18.Size
	if size <= 0 {
		return nil, 0, fmt.Errorf("day18: invalid memory size %d", size)
	}
	falling, err := parseBytes(in.Text, size)
	return falling, size, err
}

func shortestExit(_ context.Context, in registry.Input) (registry.Answer, error) {
	falling, size, err := setup(in)
	if err != nil {
		return "", err
	}
	n := min(in.Config.Day18.Bytes, len(falling))
	steps, ok := escape(memory(falling, size, n))
	if !ok {
		return "", ErrNoSolution
	}
	return registry.Int(steps), nil
}

// firstBlockingByte binary searches for the first byte after which the exit
// is unreachable. Reachability only ever goes from true to false.
func firstBlockingByte(_ context.Context, in registry.Input) (registry.Answer, error) {
	falling, size, err := setup(in)
	if err != nil {
		return "", err
	}
	n := sort.Search(len(falling)+1, func(n int) bool {
		_, ok := escape(memory(falling, size, n))
		return !ok
	})
	if n == 0 || n > len(falling) {
		return "", ErrNoSolution
	}
	b := falling[n-1]
	return registry.Answer(fmt.Sprintf("%d,%d", b.X, b.Y)), nil
}
