// Package day19 solves "Linen Layout": arranging towels into designs.
package day19

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 19,
		Name:   "Linen Layout",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return tally(in.Text, func(ways int) int { return min(ways, 1) })
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return tally(in.Text, func(ways int) int { return ways })
		},
	})
}

func parseOnsen(text string) ([]string, []string, error) {
	sections := parse.Sections(text)
	if len(sections) != 2 {
		return nil, nil, fmt.Errorf("day19: expected towels and designs sections, got %d", len(sections))
	}
	var towels []string
	for _, t := range strings.Split(sections[0], ",") {
		if t = strings.TrimSpace(t); t != "" {
			towels = append(towels, t)
		}
	}
	if len(towels) == 0 {
		return nil, nil, fmt.Errorf("day19: no towel patterns")
	}
	return towels, parse.Lines(sections[1]), nil
}

// arrangements counts the ways to build design from towels, left to right.
// ways[i] is the number of arrangements of design[i:].
func arrangements(design string, towels []string) int {
	ways := make([]int, len(design)+1)
	ways[len(design)] = 1
	for i := len(design) - 1; i >= 0; i-- {
		for _, t := range towels {
			if strings.HasPrefix(design[i:], t) {
				ways[i] += ways[i+len(t)]
			}
		}
	}
	return ways[0]
}

func tally(text string, score func(ways int) int) (registry.Answer, error) {
	towels, designs, err := parseOnsen(text)
	if err != nil {
		return "", err
	}
	total := 0
	for _, d := range designs {
		total += score(arrangements(d, towels))
	}
	return registry.Int(total), nil
}
