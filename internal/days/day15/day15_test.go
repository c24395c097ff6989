package day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
)

const small = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

const smallWide = `#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
`

func TestGPS(t *testing.T) {
	got, err := gpsAfterMoves(registry.Input{Text: small}, false)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("2028"), got)

	got, err = gpsAfterMoves(registry.Input{Text: smallWide}, true)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("618"), got)
}

func TestSmallFinalState(t *testing.T) {
	g, err := core.Parse("########\n#..O.O.#\n##@.O..#\n#...O..#\n#.#.O..#\n#...O..#\n#......#\n########\n", tiles)
	require.NoError(t, err)
	w, err := newWarehouse(g)
	require.NoError(t, err)
	moves, err := parseMoves("<^^>>>vv<v>>v<<")
	require.NoError(t, err)
	for _, d := range moves {
		w.move(d)
	}

	want := `########
#....OO#
##.....#
#.....O#
#.#O@..#
#...O..#
#...O..#
########
`
	assert.Equal(t, want, w.grid.Render(tiles.Encode))
}

func TestWidePushBlocked(t *testing.T) {
	g, err := core.Parse("######\n#....#\n#.O..#\n#.@..#\n######\n", tiles)
	require.NoError(t, err)
	w, err := newWarehouse(widen(g))
	require.NoError(t, err)

	// The box moves up once, then the wall stops the whole chain.
	w.move(core.DirUp)
	w.move(core.DirUp)
	assert.Equal(t, `############
##..[]....##
##..@.....##
##........##
############
`, w.grid.Render(tiles.Encode))
}

func TestInvalidMove(t *testing.T) {
	_, err := gpsAfterMoves(registry.Input{Text: "###\n#@#\n###\n\n<x"}, false)
	assert.ErrorContains(t, err, "invalid move")
}
