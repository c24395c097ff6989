package day02

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func TestParts(t *testing.T) {
	p, err := registry.Lookup("day02")
	require.NoError(t, err)
	ctx := context.Background()
	in := registry.Input{Text: sample}

	got, err := p.Solve(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("2"), got)

	got, err = p.Solve(ctx, 2, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("4"), got)
}

func TestIsSafe(t *testing.T) {
	tests := []struct {
		levels   []int
		safe     bool
		dampened bool
	}{
		{[]int{7, 6, 4, 2, 1}, true, true},
		{[]int{1, 2, 7, 8, 9}, false, false},
		{[]int{1, 3, 2, 4, 5}, false, true},
		{[]int{8, 6, 4, 4, 1}, false, true},
		{[]int{5, 1, 2, 3}, false, true}, // drop the first level
	}
	for _, tc := range tests {
		assert.Equal(t, tc.safe, isSafe(tc.levels), "isSafe(%v)", tc.levels)
		assert.Equal(t, tc.dampened, isSafeDampened(tc.levels), "isSafeDampened(%v)", tc.levels)
	}
}
