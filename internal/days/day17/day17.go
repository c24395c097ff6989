// Package day17 solves "Chronospatial Computer": running and reverse
// engineering a 3-bit program.
package day17

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

// ErrNoSolution is returned when no register A value reproduces the program.
var ErrNoSolution = errors.New("day17: no solution")

func init() {
	registry.Days(registry.Parts{
		Number: 17,
		Name:   "Chronospatial Computer",
		Part1:  runProgram,
		Part2:  findQuine,
	})
}

type debugParser struct {
	register *regexp.Regexp
	program  *regexp.Regexp
}

func newDebugParser() *debugParser {
	return &debugParser{
		register: regexp.MustCompile(`^Register ([ABC]): (\d+)$`),
		program:  regexp.MustCompile(`^Program: ([0-7](?:,[0-7])*)$`),
	}
}

func (dp *debugParser) parse(text string) (*Computer, error) {
	sections := parse.Sections(text)
	if len(sections) != 2 {
		return nil, fmt.Errorf("day17: expected registers and program sections, got %d", len(sections))
	}

	c := &Computer{}
	regs := map[string]*uint64{"A": &c.A, "B": &c.B, "C": &c.C}
	for _, line := range parse.Lines(sections[0]) {
		m := dp.register.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("day17: malformed register %q", line)
		}
		v, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day17: register %s: %w", m[1], err)
		}
		*regs[m[1]] = v
	}

	m := dp.program.FindStringSubmatch(strings.TrimSpace(sections[1]))
	if m == nil {
		return nil, fmt.Errorf("day17: malformed program %q", sections[1])
	}
	for _, s := range strings.Split(m[1], ",") {
		c.Program = append(c.Program, s[0]-'0')
	}
	return c, nil
}

func join(values []uint8) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

func runProgram(ctx context.Context, in registry.Input) (registry.Answer, error) {
	c, err := newDebugParser().parse(in.Text)
	if err != nil {
		return "", err
	}
	out, err := c.Run(ctx, 0)
	if err != nil {
		return "", err
	}
	return registry.Answer(join(out)), nil
}

// findQuine searches for the lowest A that makes the program print itself.
// The programs shift A right by three bits per output, so the last output
// depends only on the top octal digit of A. The search fixes digits from the
// top down, keeping candidates whose output matches the program's tail.
func findQuine(ctx context.Context, in registry.Input) (registry.Answer, error) {
	c, err := newDebugParser().parse(in.Text)
	if err != nil {
		return "", err
	}
	a, ok, err := quine(ctx, c.Program, 0)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSolution
	}
	return registry.Int(a), nil
}

func quine(ctx context.Context, program []uint8, prefix uint64) (uint64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	lo := prefix
	if prefix == 0 {
		lo = 1
	}
	for a := lo; a < prefix+8; a++ {
		vm := &Computer{A: a, Program: program}
		out, err := vm.Run(ctx, len(program)+1)
		if err != nil {
			return 0, false, err
		}
		if len(out) > len(program) || !slices.Equal(out, program[len(program)-len(out):]) {
			continue
		}
		if len(out) == len(program) {
			return a, true, nil
		}
		if a>>61 != 0 {
			continue // a<<3 would overflow
		}
		if found, ok, err := quine(ctx, program, a<<3); ok || err != nil {
			return found, ok, err
		}
	}
	return 0, false, nil
}
