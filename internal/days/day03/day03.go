// Package day03 solves "Mull It Over": executing the valid instructions
// hidden in corrupted memory.
package day03

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 3,
		Name:   "Mull It Over",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return newScanner().sum(in.Text, false)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return newScanner().sum(in.Text, true)
		},
	})
}

// scanner finds mul, do and don't instructions.
type scanner struct {
	instr *regexp.Regexp
}

func newScanner() *scanner {
	return &scanner{
		instr: regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`),
	}
}

// sum adds up the products of every enabled mul. Conditionals toggle
// enablement only when honourConditionals is set.
func (s *scanner) sum(memory string, honourConditionals bool) (registry.Answer, error) {
	enabled := true
	total := 0
	for _, m := range s.instr.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			if honourConditionals {
				enabled = false
			}
		default:
			if !enabled {
				continue
			}
			a, err := strconv.Atoi(m[1])
			if err != nil {
				return "", fmt.Errorf("day03: %w", err)
			}
			b, err := strconv.Atoi(m[2])
			if err != nil {
				return "", fmt.Errorf("day03: %w", err)
			}
			total += a * b
		}
	}
	return registry.Int(total), nil
}
