// Package day02 solves "Red-Nosed Reports": checking reactor level reports.
package day02

import (
	"context"
	"fmt"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 2,
		Name:   "Red-Nosed Reports",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countSafe(in.Text, isSafe)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countSafe(in.Text, isSafeDampened)
		},
	})
}

func countSafe(text string, safe func([]int) bool) (registry.Answer, error) {
	count := 0
	for i, line := range parse.Lines(text) {
		levels, err := parse.Ints(line)
		if err != nil {
			return "", fmt.Errorf("day02: report %d: %w", i+1, err)
		}
		if safe(levels) {
			count++
		}
	}
	return registry.Int(count), nil
}

// isSafe reports whether levels move strictly in one direction by 1 to 3 per step.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		if (levels[i] > levels[i-1]) != increasing {
			return false
		}
		if diff := core.AbsDiff(levels[i], levels[i-1]); diff < 1 || diff > 3 {
			return false
		}
	}
	return true
}

// isSafeDampened tolerates removing a single level.
func isSafeDampened(levels []int) bool {
	if isSafe(levels) {
		return true
	}
	without := make([]int, 0, len(levels)-1)
	for skip := range levels {
		without = append(without[:0], levels[:skip]...)
		without = append(without, levels[skip+1:]...)
		if isSafe(without) {
			return true
		}
	}
	return false
}
