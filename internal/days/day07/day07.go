// Package day07 solves "Bridge Repair": restoring the operators of calibration equations.
package day07

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 7,
		Name:   "Bridge Repair",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return calibrate(in.Text, false)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return calibrate(in.Text, true)
		},
	})
}

type equation struct {
	target int
	nums   []int
}

func parseEquations(text string) ([]equation, error) {
	var eqs []equation
	for i, line := range parse.Lines(text) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("day07: line %d: missing ':'", i+1)
		}
		target, err := parse.Int(head)
		if err != nil {
			return nil, fmt.Errorf("day07: line %d: %w", i+1, err)
		}
		nums, err := parse.Ints(tail)
		if err != nil || len(nums) == 0 {
			return nil, fmt.Errorf("day07: line %d: malformed operands %q", i+1, tail)
		}
		eqs = append(eqs, equation{target: target, nums: nums})
	}
	return eqs, nil
}

// calibrate sums the targets of equations that some choice of operators satisfies.
func calibrate(text string, withConcat bool) (registry.Answer, error) {
	eqs, err := parseEquations(text)
	if err != nil {
		return "", err
	}
	total := 0
	for _, eq := range eqs {
		if solvable(eq.target, eq.nums, withConcat) {
			total += eq.target
		}
	}
	return registry.Int(total), nil
}

// solvable works backwards from the last operand: each operator is undone
// only when the remaining target allows it, which prunes most branches.
func solvable(target int, nums []int, withConcat bool) bool {
	last := nums[len(nums)-1]
	if len(nums) == 1 {
		return target == last
	}
	rest := nums[:len(nums)-1]

	if target >= last && solvable(target-last, rest, withConcat) {
		return true
	}
	if last != 0 && target%last == 0 && solvable(target/last, rest, withConcat) {
		return true
	}
	if withConcat {
		if prefix, ok := trimDigits(target, last); ok && solvable(prefix, rest, withConcat) {
			return true
		}
	}
	return false
}

// trimDigits removes suffix from the decimal end of n.
func trimDigits(n, suffix int) (int, bool) {
	pow := 10
	for pow <= suffix {
		pow *= 10
	}
	if n <= suffix || n%pow != suffix {
		return 0, false
	}
	return n / pow, true
}
