// Package day04 solves "Ceres Search": a word search for XMAS.
package day04

import (
	"context"
	"fmt"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 4,
		Name:   "Ceres Search",
		Part1:  countWords,
		Part2:  countCrosses,
	})
}

const word = "XMAS"

func parseGrid(text string) (*core.Grid[byte], error) {
	g, err := core.ParseBytes(text)
	if err != nil {
		return nil, fmt.Errorf("day04: %w", err)
	}
	return g, nil
}

// countWords counts XMAS in every direction, including backwards and diagonally.
func countWords(_ context.Context, in registry.Input) (registry.Answer, error) {
	g, err := parseGrid(in.Text)
	if err != nil {
		return "", err
	}

	count := 0
	for p, b := range g.All() {
		if b != word[0] {
			continue
		}
		for _, d := range core.Directions8 {
			if spells(g, p, d.Delta()) {
				count++
			}
		}
	}
	return registry.Int(count), nil
}

func spells(g *core.Grid[byte], from, step core.Coord) bool {
	for i := range len(word) {
		if g.At(from.Add(step.Scale(i))) != word[i] {
			return false
		}
	}
	return true
}

// countCrosses counts MAS written twice in the shape of an X centred on the A.
func countCrosses(_ context.Context, in registry.Input) (registry.Answer, error) {
	g, err := parseGrid(in.Text)
	if err != nil {
		return "", err
	}

	count := 0
	for p, b := range g.All() {
		if b != 'A' {
			continue
		}
		if isMS(g, p, core.DirUp.Combined(core.DirLeft)) && isMS(g, p, core.DirUp.Combined(core.DirRight)) {
			count++
		}
	}
	return registry.Int(count), nil
}

// isMS reports whether the two cells at centre±offset hold one M and one S.
func isMS(g *core.Grid[byte], centre, offset core.Coord) bool {
	a, b := g.At(centre.Add(offset)), g.At(centre.Sub(offset))
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
