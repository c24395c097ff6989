// Package registry provides a global registry for puzzle solvers.
// Days register themselves in init() functions, allowing the CLI
// to discover and run puzzles without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrUnknownPuzzle is returned when no puzzle matches an ID.
	ErrUnknownPuzzle = errors.New("registry: unknown puzzle")
	// ErrUnknownPart is returned when a part other than 1 or 2 is requested.
	ErrUnknownPart = errors.New("registry: unknown part")
)

// Puzzle is the interface every daily solver implements.
// Solvers are stateless: every Solve call parses its own input.
type Puzzle interface {
	// ID returns a unique identifier for this puzzle (e.g., "day06").
	// Used for CLI commands, input file names and answer storage.
	ID() string

	// Day returns the day number, 1-based.
	Day() int

	// Title returns a human-readable name for display.
	Title() string

	// Solve computes the answer for part 1 or 2 of the puzzle.
	Solve(ctx context.Context, part int, in Input) (Answer, error)
}

// PuzzleInfo contains metadata about a registered puzzle.
type PuzzleInfo struct {
	ID    string
	Day   int
	Title string
}

// Factory is a function that creates a new instance of a puzzle.
type Factory func() Puzzle

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PuzzleInfo)
	mu        sync.RWMutex
)

// Register adds a puzzle factory to the registry.
// Typically called from a day's init() function.
// Panics if a puzzle with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: puzzle %q already registered", id))
	}

	p := f()
	if p.ID() != id {
		panic(fmt.Sprintf("registry: puzzle registered as %q reports ID %q", id, p.ID()))
	}

	factories[id] = f
	infos[id] = PuzzleInfo{ID: id, Day: p.Day(), Title: p.Title()}
}

// List returns information about all registered puzzles, sorted by day.
func List() []PuzzleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PuzzleInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new puzzle by its ID.
// Returns an error if the puzzle ID is not registered.
func Create(id string) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPuzzle, id)
	}

	return f(), nil
}

// Exists checks if a puzzle with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Lookup resolves a user-supplied day ("6", "06" or "day06") and creates
// the matching puzzle.
func Lookup(dayOrID string) (Puzzle, error) {
	id, err := NormalizeID(dayOrID)
	if err != nil {
		return nil, err
	}
	return Create(id)
}

// NormalizeID turns "6", "06" or "day6" into the canonical "day06".
func NormalizeID(dayOrID string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(dayOrID))
	s = strings.TrimPrefix(s, "day")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return "", fmt.Errorf("%w %q", ErrUnknownPuzzle, dayOrID)
	}
	return PuzzleID(n), nil
}

// PuzzleID returns the canonical ID of a day number.
func PuzzleID(day int) string {
	return fmt.Sprintf("day%02d", day)
}
