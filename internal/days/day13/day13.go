// Package day13 solves "Claw Contraption": the cheapest way to win each prize.
package day13

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strconv"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 13,
		Name:   "Claw Contraption",
		Part1: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return totalTokens(in.Text, 0, 100)
		},
		Part2: func(_ context.Context, in registry.Input) (registry.Answer, error) {
			return totalTokens(in.Text, in.Config.Day13.PrizeOffset, 0)
		},
	})
}

const (
	costA = 3
	costB = 1
)

type machine struct {
	a, b, prize core.Coord
}

type machineParser struct {
	button *regexp.Regexp
	prize  *regexp.Regexp
}

func newMachineParser() *machineParser {
	return &machineParser{
		button: regexp.MustCompile(`^Button ([AB]): X\+(\d+), Y\+(\d+)$`),
		prize:  regexp.MustCompile(`^Prize: X=(\d+), Y=(\d+)$`),
	}
}

func (mp *machineParser) parse(text string) ([]machine, error) {
	var machines []machine
	for i, section := range parse.Sections(text) {
		lines := parse.Lines(section)
		if len(lines) != 3 {
			return nil, fmt.Errorf("day13: machine %d: expected 3 lines, got %d", i+1, len(lines))
		}
		var m machine
		for j, btn := range []*core.Coord{&m.a, &m.b} {
			sub := mp.button.FindStringSubmatch(lines[j])
			if sub == nil || sub[1] != string(rune('A'+j)) {
				return nil, fmt.Errorf("day13: machine %d: malformed button %q", i+1, lines[j])
			}
			*btn = coord(sub[2], sub[3])
		}
		sub := mp.prize.FindStringSubmatch(lines[2])
		if sub == nil {
			return nil, fmt.Errorf("day13: machine %d: malformed prize %q", i+1, lines[2])
		}
		m.prize = coord(sub[1], sub[2])
		machines = append(machines, m)
	}
	return machines, nil
}

// coord converts two regexp-validated digit strings.
func coord(x, y string) core.Coord {
	xi, _ := strconv.Atoi(x)
	yi, _ := strconv.Atoi(y)
	return core.C(xi, yi)
}

// presses solves the 2x2 linear system exactly. ok is false when the prize
// cannot be reached with whole, non-negative presses.
func (m machine) presses() (a, b int64, ok bool) {
	ax, ay := big.NewInt(int64(m.a.X)), big.NewInt(int64(m.a.Y))
	bx, by := big.NewInt(int64(m.b.X)), big.NewInt(int64(m.b.Y))
	px, py := big.NewInt(int64(m.prize.X)), big.NewInt(int64(m.prize.Y))

	det := new(big.Int).Sub(new(big.Int).Mul(ax, by), new(big.Int).Mul(ay, bx))
	if det.Sign() == 0 {
		return 0, 0, false
	}
	numA := new(big.Int).Sub(new(big.Int).Mul(px, by), new(big.Int).Mul(py, bx))
	numB := new(big.Int).Sub(new(big.Int).Mul(ax, py), new(big.Int).Mul(ay, px))

	ra := new(big.Rat).SetFrac(numA, det)
	rb := new(big.Rat).SetFrac(numB, det)
	if !ra.IsInt() || !rb.IsInt() || ra.Sign() < 0 || rb.Sign() < 0 {
		return 0, 0, false
	}
	return ra.Num().Int64(), rb.Num().Int64(), true
}

// totalTokens sums the cost of every winnable prize. limit caps the presses
// per button; 0 means unlimited.
func totalTokens(text string, offset int64, limit int64) (registry.Answer, error) {
	machines, err := newMachineParser().parse(text)
	if err != nil {
		return "", err
	}
	shift := core.C(int(offset), int(offset))

	var tokens int64
	for _, m := range machines {
		m.prize = m.prize.Add(shift)
		a, b, ok := m.presses()
		if !ok || (limit > 0 && (a > limit || b > limit)) {
			continue
		}
		tokens += costA*a + costB*b
	}
	return registry.Int(tokens), nil
}
