package core_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/xmas/internal/core"
)

func TestNewFilled(t *testing.T) {
	g := core.NewFilled(core.C(20, 10), byte('.'))

	if g.Width() != 20 || g.Height() != 10 {
		t.Errorf("expected 20x10 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 200 {
		t.Errorf("expected 200 cells, got %d", g.Len())
	}
	if n := g.CountFunc(func(b byte) bool { return b == '.' }); n != 200 {
		t.Errorf("expected every cell filled, got %d", n)
	}

	empty := core.NewGrid[int](core.C(-3, 4))
	if empty.Len() != 0 || empty.Width() != 0 {
		t.Errorf("negative width should produce an empty grid, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestGridIndex(t *testing.T) {
	g := core.NewGrid[byte](core.C(20, 10))

	testCases := []struct {
		p      core.Coord
		index  int
		inside bool
	}{
		{core.C(0, 0), 0, true},
		{core.C(4, 5), 104, true},
		{core.C(19, 9), 199, true},
		{core.C(-1, 0), 0, false},
		{core.C(0, -1), 0, false},
		{core.C(20, 0), 0, false},
		{core.C(0, 10), 0, false},
	}

	for _, tc := range testCases {
		index, ok := g.Index(tc.p)
		if ok != tc.inside || index != tc.index {
			t.Errorf("Index(%v) = %d, %v; expected %d, %v", tc.p, index, ok, tc.index, tc.inside)
		}
	}
}

func TestGridBoundsTotality(t *testing.T) {
	g := core.NewGrid[rune](core.C(3, 2))

	for y := -2; y <= 4; y++ {
		for x := -2; x <= 5; x++ {
			p := core.C(x, y)
			_, ok := g.Get(p)
			inside := x >= 0 && x < 3 && y >= 0 && y < 2
			if ok != inside || g.IsInside(p) != inside {
				t.Errorf("at %v: Get ok=%v IsInside=%v, expected %v", p, ok, g.IsInside(p), inside)
			}
			if (g.Ptr(p) != nil) != inside {
				t.Errorf("at %v: Ptr nil-ness disagrees with bounds", p)
			}
		}
	}
}

func TestParse(t *testing.T) {
	const text = "0123\n" +
		"4567\n" +
		"89AB\n"

	g, err := core.ParseBytes(text)
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if got := g.At(core.C(2, 1)); got != '6' {
		t.Errorf("At(2,1) = %q, expected '6'", got)
	}
	if got := string(g.Row(2)); got != "89AB" {
		t.Errorf("Row(2) = %q", got)
	}
	if g.Row(3) != nil || g.Row(-1) != nil {
		t.Error("out-of-range rows should be nil")
	}
}

func TestParseErrors(t *testing.T) {
	_, err := core.ParseBytes("")
	if !errors.Is(err, core.ErrEmptyInput) {
		t.Errorf("ParseBytes(\"\") error = %v, expected ErrEmptyInput", err)
	}

	_, err = core.ParseBytes("abc\nde\n")
	var rowErr *core.RowLengthError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected RowLengthError, got %v", err)
	}
	if rowErr.Current != 2 || rowErr.Expected != 3 {
		t.Errorf("got current=%d expected=%d, want 2 and 3", rowErr.Current, rowErr.Expected)
	}
	if !errors.Is(err, core.ErrInconsistentRowLength) {
		t.Error("RowLengthError should match ErrInconsistentRowLength")
	}

	_, err = core.ParseBytes("0123\n457\n89AB\n")
	if !errors.As(err, &rowErr) || rowErr.Current != 3 || rowErr.Expected != 4 {
		t.Errorf("expected current=3 expected=4, got %v", err)
	}
}

func TestParseBytesMeasuresBytes(t *testing.T) {
	// 'é' is two bytes, so the first row is three bytes wide.
	_, err := core.ParseBytes("é.\n..\n")
	var rowErr *core.RowLengthError
	if !errors.As(err, &rowErr) || rowErr.Current != 2 || rowErr.Expected != 3 {
		t.Errorf("expected current=2 expected=3, got %v", err)
	}

	const text = "é.\nabc\n"
	g, err := core.ParseBytes(text)
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("expected 3x2 grid, got %dx%d", g.Width(), g.Height())
	}
	if got := g.String(); got != text {
		t.Errorf("round trip = %q, expected %q", got, text)
	}

	runes, err := core.ParseRunes("é.\n..\n")
	if err != nil {
		t.Fatalf("ParseRunes() failed: %v", err)
	}
	if runes.Width() != 2 || runes.At(core.C(0, 0)) != 'é' {
		t.Errorf("rune grid = %dx%d starting %q", runes.Width(), runes.Height(), runes.At(core.C(0, 0)))
	}
}

type tile uint8

const (
	floor tile = iota
	wall
	box
)

func TestParseEnum(t *testing.T) {
	codec := core.EnumCodec(map[rune]tile{'.': floor, '#': wall, 'O': box})

	g, err := core.Parse("#.O\n#..\n", codec)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got := g.At(core.C(2, 0)); got != box {
		t.Errorf("At(2,0) = %v, expected box", got)
	}
	if got := g.Render(codec.Encode); got != "#.O\n#..\n" {
		t.Errorf("Render() = %q", got)
	}

	_, err = core.Parse("#.O\n#.X\n", codec)
	var tileErr *core.TileError
	if !errors.As(err, &tileErr) {
		t.Fatalf("expected TileError, got %v", err)
	}
	if tileErr.Char != 'X' || tileErr.Pos != core.C(2, 1) {
		t.Errorf("TileError = %+v", tileErr)
	}
	if !errors.Is(err, core.ErrInvalidTile) {
		t.Error("TileError should match ErrInvalidTile")
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"MMMSXXMASM\nMSAMXMSMSA\nAMXSXMAAMM\n",
		"#\n",
		"..#\r\n#..\r\n",
		"ab\ncd",
	}

	for _, text := range texts {
		g, err := core.ParseBytes(text)
		if err != nil {
			t.Fatalf("ParseBytes(%q) failed: %v", text, err)
		}
		want := text
		if want[len(want)-1] != '\n' {
			want += "\n"
		}
		if text == "..#\r\n#..\r\n" {
			want = "..#\n#..\n"
		}
		if got := g.String(); got != want {
			t.Errorf("round trip of %q = %q", text, got)
		}
	}
}

func TestPointsOrder(t *testing.T) {
	g := core.NewGrid[byte](core.C(3, 2))

	expected := []core.Coord{
		core.C(0, 0), core.C(1, 0), core.C(2, 0),
		core.C(0, 1), core.C(1, 1), core.C(2, 1),
	}
	if diff := cmp.Diff(expected, slices.Collect(g.Points())); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
	// Restartable: a second pass yields the same sequence.
	if diff := cmp.Diff(expected, slices.Collect(g.Points())); diff != "" {
		t.Errorf("second Points() pass mismatch (-want +got):\n%s", diff)
	}

	var withTiles []core.Coord
	for p := range g.All() {
		withTiles = append(withTiles, p)
	}
	if diff := cmp.Diff(expected, withTiles); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllStopsEarly(t *testing.T) {
	g, _ := core.ParseBytes("abc\ndef\n")

	var seen []byte
	for _, b := range g.All() {
		seen = append(seen, b)
		if b == 'c' {
			break
		}
	}
	if string(seen) != "abc" {
		t.Errorf("seen %q, expected \"abc\"", seen)
	}
}

func TestFind(t *testing.T) {
	g, _ := core.ParseBytes("..#.\n.^..\n...^\n")

	p, ok := core.Find(g, '^')
	if !ok || p != core.C(1, 1) {
		t.Errorf("Find('^') = %v, %v; expected (1,1)", p, ok)
	}
	if _, ok := core.Find(g, 'E'); ok {
		t.Error("Find('E') should fail")
	}
}

func TestSet(t *testing.T) {
	g := core.NewFilled(core.C(3, 3), '.')
	before := g.Clone()

	if g.Set(core.C(3, 0), '#') {
		t.Error("out-of-bounds Set should return false")
	}
	if !core.Equal(g, before) {
		t.Error("out-of-bounds Set changed the grid")
	}

	if !g.Set(core.C(1, 2), '#') {
		t.Error("in-bounds Set should return true")
	}
	if got, ok := g.Get(core.C(1, 2)); !ok || got != '#' {
		t.Errorf("Get after Set = %q, %v", got, ok)
	}

	*g.Ptr(core.C(0, 0)) = 'S'
	if g.String() != "S..\n...\n.#.\n" {
		t.Errorf("unexpected grid:\n%s", g)
	}
}

func TestRowsAreViews(t *testing.T) {
	g, _ := core.ParseRunes("ab\ncd\n")

	var lines []string
	for _, row := range g.Rows() {
		lines = append(lines, string(row))
	}
	if diff := cmp.Diff([]string{"ab", "cd"}, lines); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}

	g.Row(1)[0] = 'X'
	if got := g.At(core.C(0, 1)); got != 'X' {
		t.Errorf("write through Row view not visible, got %q", got)
	}
}
