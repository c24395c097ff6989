// Package day10 solves "Hoof It": scoring hiking trails on a topographic map.
package day10

import (
	"context"
	"fmt"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 10,
		Name:   "Hoof It",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return sumTrailheads(in.Text, trail.score)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return sumTrailheads(in.Text, trail.rating)
		},
	})
}

// impassable marks tiles that are not part of any trail.
const impassable = -1

var heightCodec = core.Codec[int]{
	Decode: func(r rune) (int, bool) {
		switch {
		case r >= '0' && r <= '9':
			return int(r - '0'), true
		case r == '.':
			return impassable, true
		}
		return 0, false
	},
	Encode: func(h int) rune {
		if h == impassable {
			return '.'
		}
		return rune('0' + h)
	},
}

// trail summarises every hike from one trailhead.
type trail struct {
	peaks int // distinct height-9 tiles reachable
	paths int // distinct hiking trails
}

func (t trail) score() int  { return t.peaks }
func (t trail) rating() int { return t.paths }

// hike explores uphill from a trailhead in height order. A min-queue keyed by
// height guarantees every tile's path count is final before it is expanded.
func hike(g *core.Grid[int], head core.Coord) trail {
	paths := map[core.Coord]int{head: 1}
	queue := core.NewMinQueue[core.Coord, int]()
	queue.Push(head, 0)

	var t trail
	for queue.Len() > 0 {
		item, _ := queue.Pop()
		p, h := item.Value, item.Key
		if h == 9 {
			t.peaks++
			t.paths += paths[p]
			continue
		}
		for _, d := range core.Directions4 {
			q := p.Step(d)
			if !g.IsInside(q) || g.At(q) != h+1 {
				continue
			}
			if _, queued := paths[q]; !queued {
				queue.Push(q, h+1)
			}
			paths[q] += paths[p]
		}
	}
	return t
}

func sumTrailheads(text string, measure func(trail) int) (registry.Answer, error) {
	g, err := core.Parse(text, heightCodec)
	if err != nil {
		return "", fmt.Errorf("day10: %w", err)
	}
	total := 0
	for p, h := range g.All() {
		if h == 0 {
			total += measure(hike(g, p))
		}
	}
	return registry.Int(total), nil
}
