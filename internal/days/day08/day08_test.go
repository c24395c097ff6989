package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

const resonantSample = `T.........
...T......
.T........
..........
..........
..........
..........
..........
..........
..........
`

func TestCountAntinodes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		resonant bool
		want     registry.Answer
	}{
		{"sample", sample, false, "14"},
		{"sample resonant", sample, true, "34"},
		{"T antennas resonant", resonantSample, true, "9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := countAntinodes(tc.text, tc.resonant)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
