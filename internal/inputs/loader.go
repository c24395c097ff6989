// Package inputs locates and reads puzzle input files.
//
// Inputs live under a root directory as either dayNN.txt or dayNN/input.txt.
// Sample inputs sit next to them as dayNN.sample.txt or dayNN/sample.txt.
package inputs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/xmas/internal/registry"
)

// ErrInputNotFound is returned when no input file exists for a day.
var ErrInputNotFound = errors.New("inputs: input not found")

// Kind selects between the real input and the published sample.
type Kind int

const (
	Real Kind = iota
	Sample
)

func (k Kind) String() string {
	if k == Sample {
		return "sample"
	}
	return "input"
}

// Entry describes an input file found under the root.
type Entry struct {
	Day  int
	ID   string
	Kind Kind
	Path string
}

// Loader handles loading inputs from a directory.
type Loader struct {
	Root string

	names *regexp.Regexp
}

// NewLoader creates a new input loader.
func NewLoader(root string) *Loader {
	return &Loader{
		Root:  root,
		names: regexp.MustCompile(`^day(\d{1,2})(?:\.(sample))?\.txt$|^(input|sample)\.txt$`),
	}
}

// candidates lists the paths tried for a day, in order.
func (l *Loader) candidates(day int, kind Kind) []string {
	id := registry.PuzzleID(day)
	if kind == Sample {
		return []string{
			filepath.Join(l.Root, id+".sample.txt"),
			filepath.Join(l.Root, id, "sample.txt"),
		}
	}
	return []string{
		filepath.Join(l.Root, id+".txt"),
		filepath.Join(l.Root, id, "input.txt"),
	}
}

// Path resolves the input file of a day.
func (l *Loader) Path(day int, kind Kind) (string, error) {
	for _, path := range l.candidates(day, kind) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrInputNotFound, registry.PuzzleID(day), l.Root)
}

// Load reads the input of a day.
func (l *Loader) Load(day int, kind Kind) (string, error) {
	path, err := l.Path(day, kind)
	if err != nil {
		return "", err
	}
	return LoadFile(path)
}

// LoadFile reads an input file and strips a single trailing newline.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("inputs: reading file %s: %w", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// LoadAll scans the root and lists every input file it recognises.
// Returns entries sorted by day, real inputs before samples.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if entry, ok := l.classify(path); ok {
			entries = append(entries, entry)
		}
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("inputs: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day < entries[j].Day
		}
		return entries[i].Kind < entries[j].Kind
	})

	return entries, nil
}

func (l *Loader) classify(path string) (Entry, bool) {
	m := l.names.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return Entry{}, false
	}

	dayText, kind := m[1], Real
	if m[2] == "sample" {
		kind = Sample
	}
	if m[3] != "" {
		// dayNN/input.txt or dayNN/sample.txt
		dir := filepath.Base(filepath.Dir(path))
		if !strings.HasPrefix(dir, "day") || filepath.Dir(filepath.Dir(path)) != filepath.Clean(l.Root) {
			return Entry{}, false
		}
		dayText = strings.TrimPrefix(dir, "day")
		if m[3] == "sample" {
			kind = Sample
		}
	}

	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 {
		return Entry{}, false
	}
	return Entry{Day: day, ID: registry.PuzzleID(day), Kind: kind, Path: path}, true
}
