package day20

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/config"
	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

func TestCountCheats(t *testing.T) {
	tests := []struct {
		name      string
		minSaving int
		duration  int
		want      registry.Answer
	}{
		{"short any saving", 1, 2, "44"},
		{"short at least 64", 64, 2, "1"},
		{"short at least 20", 20, 2, "5"},
		{"long at least 76", 76, 20, "3"},
		{"long at least 72", 72, 20, "29"},
		{"long at least 50", 50, 20, "285"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			days := config.DefaultDays()
			days.Day20.MinSaving = tc.minSaving
			got, err := countCheats(registry.Input{Text: sample, Config: days}, tc.duration)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOffsets(t *testing.T) {
	assert.Len(t, offsets(1), 4)
	assert.Len(t, offsets(2), 12)
	for _, off := range offsets(20) {
		assert.LessOrEqual(t, off.ManhattanMagnitude(), uint(20))
	}
}

func TestWalledOff(t *testing.T) {
	days := config.DefaultDays()
	_, err := countCheats(registry.Input{Text: "#####\n#S#E#\n#####\n", Config: days}, 2)
	assert.ErrorIs(t, err, ErrNoSolution)
}
