// Package day14 solves "Restroom Redoubt": robots patrolling a wrapping room.
package day14

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/registry"
)

// ErrNoSolution is returned when no second leaves every robot on its own tile.
var ErrNoSolution = errors.New("day14: no solution")

func init() {
	registry.Days(registry.Parts{
		Number: 14,
		Name:   "Restroom Redoubt",
		Part1:  safetyFactor,
		Part2:  firstDistinctSecond,
	})
}

type robot struct {
	start    core.Coord
	velocity core.Coord
}

// at returns the robot's position after the given number of seconds.
func (r robot) at(seconds int, space core.Coord) core.Coord {
	return r.start.Add(r.velocity.Scale(seconds)).Wrap(space)
}

type robotParser struct {
	line *regexp.Regexp
}

func newRobotParser() *robotParser {
	return &robotParser{line: regexp.MustCompile(`^p=(-?\d+),(-?\d+) v=(-?\d+),(-?\d+)$`)}
}

func (rp *robotParser) parse(text string) ([]robot, error) {
	var robots []robot
	for i, line := range parse.Lines(text) {
		m := rp.line.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("day14: malformed robot %d: %q", i+1, line)
		}
		var n [4]int
		for j := range n {
			v, err := strconv.Atoi(m[j+1])
			if err != nil {
				return nil, fmt.Errorf("day14: robot %d: %w", i+1, err)
			}
			n[j] = v
		}
		robots = append(robots, robot{start: core.C(n[0], n[1]), velocity: core.C(n[2], n[3])})
	}
	return robots, nil
}

func setup(in registry.Input) ([]robot, core.Coord, error) {
	cfg := in.Config.Day14
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, core.Zero, fmt.Errorf("day14: invalid space %dx%d", cfg.Width, cfg.Height)
	}
	robots, err := newRobotParser().parse(in.Text)
	return robots, core.C(cfg.Width, cfg.Height), err
}

// safetyFactor multiplies the robot counts of the four quadrants. Robots on
// the middle row or column belong to no quadrant.
func safetyFactor(_ context.Context, in registry.Input) (registry.Answer, error) {
	robots, space, err := setup(in)
	if err != nil {
		return "", err
	}
	mid := core.C(space.X/2, space.Y/2)

	var quadrants [4]int
	for _, r := range robots {
		p := r.at(in.Config.Day14.Seconds, space)
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		q := 0
		if p.X > mid.X {
			q++
		}
		if p.Y > mid.Y {
			q += 2
		}
		quadrants[q]++
	}
	return registry.Int(quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]), nil
}

// firstDistinctSecond finds the first second at which no two robots share a
// tile. Positions repeat every width*height seconds, which bounds the search.
func firstDistinctSecond(ctx context.Context, in registry.Input) (registry.Answer, error) {
	robots, space, err := setup(in)
	if err != nil {
		return "", err
	}

	period := space.X * space.Y
	for second := 1; second <= period; second++ {
		if second%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		occupied := mapset.New[core.Coord]()
		overlap := false
		for _, r := range robots {
			p := r.at(second, space)
			if occupied.Has(p) {
				overlap = true
				break
			}
			occupied.Put(p)
		}
		if !overlap {
			in.Logger().Debug("robots spread out", "second", second)
			return registry.Int(second), nil
		}
	}
	return "", ErrNoSolution
}
