// Package day20 solves "Race Condition": counting cheats through the walls of a racetrack.
package day20

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
	"github.com/vovakirdan/xmas/internal/search"
)

// ErrNoSolution is returned when the racetrack has no path from S to E.
var ErrNoSolution = errors.New("day20: no solution")

func init() {
	registry.Days(registry.Parts{
		Number: 20,
		Name:   "Race Condition",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countCheats(in, in.Config.Day20.Short)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countCheats(in, in.Config.Day20.Long)
		},
	})
}

// offsets lists every non-zero displacement within the given Manhattan radius.
func offsets(radius int) []core.Coord {
	var out []core.Coord
	for dy := -radius; dy <= radius; dy++ {
		span := radius - core.Abs(dy)
		for dx := -span; dx <= span; dx++ {
			if dx != 0 || dy != 0 {
				out = append(out, core.C(dx, dy))
			}
		}
	}
	return out
}

// countCheats counts the (start, end) cheats lasting at most duration
// picoseconds that save at least the configured time. A cheat jumps from one
// track tile to another at Manhattan distance d, so it saves the difference
// in distance from the start minus d.
func countCheats(in registry.Input, duration int) (registry.Answer, error) {
	g, err := core.ParseBytes(in.Text)
	if err != nil {
		return "", fmt.Errorf("day20: %w", err)
	}
	start, okS := core.Find(g, 'S')
	end, okE := core.Find(g, 'E')
	if !okS || !okE {
		return "", fmt.Errorf("day20: racetrack needs both S and E")
	}

	dist := search.Distances(g, start, func(b byte) bool { return b != '#' })
	base, ok := dist[end]
	if !ok {
		return "", ErrNoSolution
	}
	in.Logger().Debug("race without cheating", "picoseconds", base, "track", len(dist))

	threshold := max(in.Config.Day20.MinSaving, 1)
	jumps := offsets(duration)
	count := 0
	for p, from := range dist {
		for _, off := range jumps {
			to, ok := dist[p.Add(off)]
			if !ok {
				continue
			}
			if saving := to - from - int(off.ManhattanMagnitude()); saving >= threshold {
				count++
			}
		}
	}
	return registry.Int(count), nil
}
