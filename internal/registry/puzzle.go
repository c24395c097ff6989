package registry

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/constraints"

	"github.com/vovakirdan/xmas/internal/config"
)

// Input is everything a solver receives besides the part number.
type Input struct {
	Text   string
	Config config.DaysConfig
	Log    *log.Logger
}

var discard = log.New(io.Discard)

// Logger returns the input's logger, or a logger that discards everything.
func (in Input) Logger() *log.Logger {
	if in.Log == nil {
		return discard
	}
	return in.Log
}

// Answer is a puzzle answer as submitted: usually a number, sometimes text.
type Answer string

// Int formats an integer answer.
func Int[T constraints.Integer](v T) Answer {
	if v < 0 {
		return Answer(strconv.FormatInt(int64(v), 10))
	}
	return Answer(strconv.FormatUint(uint64(v), 10))
}

func (a Answer) String() string {
	return string(a)
}

// SolveFunc solves a single part.
type SolveFunc func(ctx context.Context, in Input) (Answer, error)

// Parts implements Puzzle from a pair of part solvers.
type Parts struct {
	Number int
	Name   string
	Part1  SolveFunc
	Part2  SolveFunc
}

func (p Parts) ID() string    { return PuzzleID(p.Number) }
func (p Parts) Day() int      { return p.Number }
func (p Parts) Title() string { return p.Name }

// Solve dispatches to the requested part.
func (p Parts) Solve(ctx context.Context, part int, in Input) (Answer, error) {
	var solve SolveFunc
	switch part {
	case 1:
		solve = p.Part1
	case 2:
		solve = p.Part2
	}
	if solve == nil {
		return "", fmt.Errorf("%w %d for %s", ErrUnknownPart, part, p.ID())
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return solve(ctx, in)
}

// Days registers a Parts puzzle under its canonical ID.
func Days(p Parts) {
	Register(p.ID(), func() Puzzle { return p })
}
