// Package day05 solves "Print Queue": ordering safety manual updates.
package day05

import (
	"context"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 5,
		Name:   "Print Queue",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return sumMiddles(in.Text, false)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return sumMiddles(in.Text, true)
		},
	})
}

// rules holds every "before|after" page pair.
type rules struct {
	before mapset.Set[[2]int]
}

func (r rules) compare(a, b int) int {
	switch {
	case r.before.Has([2]int{a, b}):
		return -1
	case r.before.Has([2]int{b, a}):
		return 1
	}
	return 0
}

func parseManual(text string) (rules, [][]int, error) {
	sections := parse.Sections(text)
	if len(sections) != 2 {
		return rules{}, nil, fmt.Errorf("day05: expected rules and updates sections, got %d", len(sections))
	}

	r := rules{before: mapset.New[[2]int]()}
	for i, line := range parse.Lines(sections[0]) {
		pages, err := parse.Ints(line)
		if err != nil || len(pages) != 2 {
			return rules{}, nil, fmt.Errorf("day05: malformed rule %d: %q", i+1, line)
		}
		r.before.Put([2]int{pages[0], pages[1]})
	}

	var updates [][]int
	for i, line := range parse.Lines(sections[1]) {
		pages, err := parse.Ints(line)
		if err != nil {
			return rules{}, nil, fmt.Errorf("day05: update %d: %w", i+1, err)
		}
		if len(pages) == 0 {
			return rules{}, nil, fmt.Errorf("day05: update %d is empty", i+1)
		}
		updates = append(updates, pages)
	}
	return r, updates, nil
}

// sumMiddles adds the middle page of every correctly ordered update, or of
// every incorrectly ordered one after fixing its order.
func sumMiddles(text string, fixed bool) (registry.Answer, error) {
	r, updates, err := parseManual(text)
	if err != nil {
		return "", err
	}

	total := 0
	for _, pages := range updates {
		ordered := slices.IsSortedFunc(pages, r.compare)
		switch {
		case ordered && !fixed:
			total += pages[len(pages)/2]
		case !ordered && fixed:
			sorted := slices.Clone(pages)
			slices.SortStableFunc(sorted, r.compare)
			total += sorted[len(sorted)/2]
		}
	}
	return registry.Int(total), nil
}
