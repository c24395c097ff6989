// Package day11 solves "Plutonian Pebbles": counting stones that split as you blink.
package day11

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 11,
		Name:   "Plutonian Pebbles",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countStones(in.Text, in.Config.Day11.Part1)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return countStones(in.Text, in.Config.Day11.Part2)
		},
	})
}

type memoKey struct {
	stone  uint64
	blinks int
}

// counter counts descendants of a stone. Stones never interact, so results
// depend only on (stone, blinks) and are memoised on that pair.
type counter struct {
	memo map[memoKey]uint64
}

func (c *counter) count(stone uint64, blinks int) uint64 {
	if blinks == 0 {
		return 1
	}
	key := memoKey{stone, blinks}
	if n, ok := c.memo[key]; ok {
		return n
	}

	var n uint64
	switch digits := strconv.FormatUint(stone, 10); {
	case stone == 0:
		n = c.count(1, blinks-1)
	case len(digits)%2 == 0:
		left, _ := strconv.ParseUint(digits[:len(digits)/2], 10, 64)
		right, _ := strconv.ParseUint(digits[len(digits)/2:], 10, 64)
		n = c.count(left, blinks-1) + c.count(right, blinks-1)
	default:
		n = c.count(stone*2024, blinks-1)
	}
	c.memo[key] = n
	return n
}

func countStones(text string, blinks int) (registry.Answer, error) {
	if blinks < 0 {
		return "", fmt.Errorf("day11: negative blink count %d", blinks)
	}
	c := &counter{memo: make(map[memoKey]uint64)}
	var total uint64
	for _, field := range strings.Fields(text) {
		stone, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return "", fmt.Errorf("day11: %w", err)
		}
		total += c.count(stone, blinks)
	}
	return registry.Int(total), nil
}
