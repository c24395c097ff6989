package day16

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const first = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#####.###.#.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const second = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		maze  string
		cost  int
		tiles int
	}{
		{"first", first, 7036, 45},
		{"second", second, 11048, 64},
		{"corridor", "#####\n#S.E#\n#####\n", 2, 3},
		{"turn", "####\n#.E#\n#S.#\n####\n", 1002, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solve(context.Background(), tc.maze)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, res.cost)
			assert.Equal(t, tc.tiles, res.tiles)
		})
	}
}

func TestUnreachable(t *testing.T) {
	_, err := solve(context.Background(), "#####\n#S#E#\n#####\n")
	assert.ErrorIs(t, err, ErrNoSolution)
}
