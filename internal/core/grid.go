package core

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Grid is a dense rectangular store of tiles.
// Cells are stored in row-major order: index = y*w + x, and len(cells) is
// always w*h. A Grid is not safe for concurrent mutation.
type Grid[T any] struct {
	w     int
	h     int
	cells []T
}

// NewFilled creates a grid of the given size with every cell set to tile.
// Negative size components are treated as zero.
func NewFilled[T any](size Coord, tile T) *Grid[T] {
	w, h := max(size.X, 0), max(size.Y, 0)
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = tile
	}
	return &Grid[T]{w: w, h: h, cells: cells}
}

// NewGrid creates a grid of the given size filled with zero-value tiles.
func NewGrid[T any](size Coord) *Grid[T] {
	var zero T
	return NewFilled(size, zero)
}

// Parse builds a grid from text, one row per line and one tile per character.
// The first line fixes the width; every following line must match it.
// A single trailing newline is ignored, and "\r\n" line endings are accepted.
func Parse[T any](text string, codec Codec[T]) (*Grid[T], error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	g := &Grid[T]{cells: make([]T, 0, len(text))}
	for line := range rowLines(text) {
		if g.h == 0 {
			g.w = utf8.RuneCountInString(line)
		}
		if err := g.addRow(line, codec); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ParseBytes parses a grid whose tiles are the raw bytes of each line.
// Width is measured in bytes, so a multibyte character occupies several cells.
func ParseBytes(text string) (*Grid[byte], error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	g := &Grid[byte]{cells: make([]byte, 0, len(text))}
	for line := range rowLines(text) {
		if g.h == 0 {
			g.w = len(line)
		}
		if len(line) != g.w {
			return nil, &RowLengthError{Current: len(line), Expected: g.w}
		}
		g.cells = append(g.cells, line...)
		g.h++
	}
	return g, nil
}

// ParseRunes parses a grid of unicode characters. Width is measured in runes.
func ParseRunes(text string) (*Grid[rune], error) {
	return Parse(text, RuneCodec)
}

// rowLines yields the lines of text without their "\n" or "\r\n" terminators.
func rowLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

func (g *Grid[T]) addRow(line string, codec Codec[T]) error {
	if n := utf8.RuneCountInString(line); n != g.w {
		return &RowLengthError{Current: n, Expected: g.w}
	}
	x := 0
	for _, r := range line {
		tile, ok := codec.Decode(r)
		if !ok {
			return &TileError{Char: r, Pos: C(x, g.h)}
		}
		g.cells = append(g.cells, tile)
		x++
	}
	g.h++
	return nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.h
}

// Size returns (width, height) as a Coord.
func (g *Grid[T]) Size() Coord {
	return C(g.w, g.h)
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Bounds returns the rectangle covered by the grid.
func (g *Grid[T]) Bounds() Rect {
	return NewRect(0, 0, g.w, g.h)
}

// IsInside returns true if the coordinate is within the grid boundaries.
func (g *Grid[T]) IsInside(p Coord) bool {
	return g.Bounds().Contains(p)
}

// Index converts a coordinate to a flat index. ok is false outside the grid.
func (g *Grid[T]) Index(p Coord) (int, bool) {
	if !g.IsInside(p) {
		return 0, false
	}
	return p.Y*g.w + p.X, true
}

// Get returns the tile at p. ok is false iff p is outside the grid.
func (g *Grid[T]) Get(p Coord) (T, bool) {
	i, ok := g.Index(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// At returns the tile at p, or the zero value when p is outside the grid.
func (g *Grid[T]) At(p Coord) T {
	t, _ := g.Get(p)
	return t
}

// Ptr returns a pointer to the tile at p for in-place updates, or nil when p
// is outside the grid.
func (g *Grid[T]) Ptr(p Coord) *T {
	i, ok := g.Index(p)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Set writes tile at p and reports whether p was inside the grid.
// Out-of-bounds writes leave the grid unchanged.
func (g *Grid[T]) Set(p Coord, tile T) bool {
	i, ok := g.Index(p)
	if !ok {
		return false
	}
	g.cells[i] = tile
	return true
}

// Points yields every coordinate in row-major order.
func (g *Grid[T]) Points() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				if !yield(C(x, y)) {
					return
				}
			}
		}
	}
}

// All yields every coordinate with its tile in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, t := range g.cells {
			if !yield(C(i%g.w, i/g.w), t) {
				return
			}
		}
	}
}

// Tiles yields every tile in row-major order.
func (g *Grid[T]) Tiles() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range g.cells {
			if !yield(t) {
				return
			}
		}
	}
}

// Row returns a view of row y, or nil when y is out of range.
// Writes through the slice update the grid.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.h {
		return nil
	}
	start := y * g.w
	end := start + g.w
	return g.cells[start:end:end]
}

// Rows yields each row index with a view of that row.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.h; y++ {
			if !yield(y, g.Row(y)) {
				return
			}
		}
	}
}

// FindFunc returns the first coordinate in row-major order whose tile
// satisfies pred.
func (g *Grid[T]) FindFunc(pred func(T) bool) (Coord, bool) {
	for p, t := range g.All() {
		if pred(t) {
			return p, true
		}
	}
	return Zero, false
}

// Find returns the first coordinate in row-major order holding tile.
func Find[T comparable](g *Grid[T], tile T) (Coord, bool) {
	return g.FindFunc(func(t T) bool { return t == tile })
}

// CountFunc returns the number of tiles satisfying pred.
func (g *Grid[T]) CountFunc(pred func(T) bool) int {
	count := 0
	for _, t := range g.cells {
		if pred(t) {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	for i, t := range a.cells {
		if t != b.cells[i] {
			return false
		}
	}
	return true
}

// Render writes the grid back to text, one newline-terminated line per row.
func (g *Grid[T]) Render(encode func(T) rune) string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.h)
	for _, row := range g.Rows() {
		for _, t := range row {
			sb.WriteRune(encode(t))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grid using the tile's natural character: raw bytes,
// runes, a Char() method, or the first rune of its fmt representation.
func (g *Grid[T]) String() string {
	if b, ok := any(g).(*Grid[byte]); ok {
		return renderBytes(b)
	}
	return g.Render(tileRune[T])
}

// renderBytes writes byte tiles back verbatim so byte grids round-trip any
// input, including multibyte characters.
func renderBytes(g *Grid[byte]) string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.h)
	for _, row := range g.Rows() {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tileRune[T any](t T) rune {
	switch v := any(t).(type) {
	case byte:
		return rune(v)
	case rune:
		return v
	case interface{ Char() rune }:
		return v.Char()
	default:
		r, _ := utf8.DecodeRuneInString(fmt.Sprint(v))
		return r
	}
}
