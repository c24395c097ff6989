package day19

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrwb
`

func TestParts(t *testing.T) {
	p, err := registry.Lookup("day19")
	require.NoError(t, err)
	ctx := context.Background()
	in := registry.Input{Text: sample}

	got, err := p.Solve(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("6"), got)

	got, err = p.Solve(ctx, 2, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("16"), got)
}

func TestArrangements(t *testing.T) {
	towels := []string{"r", "wr", "b", "g", "bwu", "rb", "gb", "br"}

	assert.Equal(t, 2, arrangements("brwrr", towels))
	assert.Equal(t, 6, arrangements("rrbgbr", towels))
	assert.Equal(t, 0, arrangements("ubwu", towels))
	assert.Equal(t, 1, arrangements("", towels))
}
