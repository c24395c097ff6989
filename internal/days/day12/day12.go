// Package day12 solves "Garden Groups": pricing fences around garden regions.
package day12

import (
	"context"
	"fmt"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
	"github.com/vovakirdan/xmas/internal/search"
)

func init() {
	registry.Days(registry.Parts{
		Number: 12,
		Name:   "Garden Groups",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return price(in.Text, perimeter)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return price(in.Text, sides)
		},
	})
}

// measure returns the fence contribution of one plot of a region.
type measure func(g *core.Grid[rune], p core.Coord) int

func price(text string, m measure) (registry.Answer, error) {
	g, err := core.ParseRunes(text)
	if err != nil {
		return "", fmt.Errorf("day12: %w", err)
	}
	total := 0
	for _, region := range search.Regions(g) {
		fence := 0
		for _, p := range region {
			fence += m(g, p)
		}
		total += len(region) * fence
	}
	return registry.Int(total), nil
}

func same(g *core.Grid[rune], p, q core.Coord) bool {
	t, ok := g.Get(q)
	return ok && t == g.At(p)
}

// perimeter counts the plot's edges that border another region or the map edge.
func perimeter(g *core.Grid[rune], p core.Coord) int {
	n := 0
	for _, d := range core.Directions4 {
		if !same(g, p, p.Step(d)) {
			n++
		}
	}
	return n
}

// sides counts the region corners at this plot. A polygon has as many sides
// as corners, so summing corners over a region yields its side count.
func sides(g *core.Grid[rune], p core.Coord) int {
	n := 0
	for _, d := range core.Directions4 {
		e := d.Turn(core.RotateRight)
		a, b := same(g, p, p.Step(d)), same(g, p, p.Step(e))
		diagonal := same(g, p, p.Add(d.Combined(e)))
		if (!a && !b) || (a && b && !diagonal) {
			n++
		}
	}
	return n
}
