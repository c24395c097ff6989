// Package day08 solves "Resonant Collinearity": antinodes of antenna pairs.
package day08

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 8,
		Name:   "Resonant Collinearity",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countAntinodes(in.Text, false)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countAntinodes(in.Text, true)
		},
	})
}

// countAntinodes counts the distinct map tiles holding an antinode.
// Without resonance each ordered antenna pair projects one antinode past
// the second antenna; with resonance it projects one at every step,
// starting on the antenna itself.
func countAntinodes(text string, resonant bool) (registry.Answer, error) {
	g, err := core.ParseRunes(text)
	if err != nil {
		return "", fmt.Errorf("day08: %w", err)
	}

	antennas := make(map[rune][]core.Coord)
	for p, r := range g.All() {
		if r != '.' && r != '#' {
			antennas[r] = append(antennas[r], p)
		}
	}

	antinodes := mapset.New[core.Coord]()
	for _, group := range antennas {
		for _, a := range group {
			for _, b := range group {
				if a == b {
					continue
				}
				step := b.Sub(a)
				if !resonant {
					if p := b.Add(step); g.IsInside(p) {
						antinodes.Put(p)
					}
					continue
				}
				for p := b; g.IsInside(p); p = p.Add(step) {
					antinodes.Put(p)
				}
			}
		}
	}
	return registry.Int(antinodes.Size()), nil
}
