// Package day01 solves "Historian Hysteria": reconciling two location lists.
package day01

import (
	"context"
	"fmt"
	"slices"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 1,
		Name:   "Historian Hysteria",
		Part1:  totalDistance,
		Part2:  similarityScore,
	})
}

func parseLists(text string) (left, right []int, err error) {
	for i, line := range parse.Lines(text) {
		nums, err := parse.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("day01: line %d: %w", i+1, err)
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("day01: line %d: expected 2 numbers, got %d", i+1, len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// totalDistance pairs the lists smallest to smallest and sums the gaps.
func totalDistance(_ context.Context, in registry.Input) (registry.Answer, error) {
	left, right, err := parseLists(in.Text)
	if err != nil {
		return "", err
	}
	slices.Sort(left)
	slices.Sort(right)

	var total uint
	for i := range left {
		total += core.AbsDiff(left[i], right[i])
	}
	return registry.Int(total), nil
}

// similarityScore weighs each left number by its count in the right list.
func similarityScore(_ context.Context, in registry.Input) (registry.Answer, error) {
	left, right, err := parseLists(in.Text)
	if err != nil {
		return "", err
	}
	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n]++
	}

	score := 0
	for _, n := range left {
		score += n * counts[n]
	}
	return registry.Int(score), nil
}
