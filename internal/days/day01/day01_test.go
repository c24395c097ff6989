package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestParts(t *testing.T) {
	ctx := context.Background()
	in := registry.Input{Text: sample}

	got, err := totalDistance(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("11"), got)

	got, err = similarityScore(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("31"), got)
}

func TestMalformed(t *testing.T) {
	_, err := totalDistance(context.Background(), registry.Input{Text: "3 4\n5\n"})
	assert.ErrorContains(t, err, "line 2")
}

func TestRegistered(t *testing.T) {
	p, err := registry.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "day01", p.ID())
}
