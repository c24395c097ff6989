package day18

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/config"
	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`

func sampleInput(text string) registry.Input {
	cfg := config.Default()
	config.ApplySample(&cfg)
	return registry.Input{Text: text, Config: cfg.Days}
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := shortestExit(ctx, sampleInput(sample))
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("22"), got)

	got, err = firstBlockingByte(ctx, sampleInput(sample))
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("6,1"), got)
}

func TestNeverBlocked(t *testing.T) {
	_, err := firstBlockingByte(context.Background(), sampleInput("3,3\n"))
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestOutsideMemory(t *testing.T) {
	_, err := shortestExit(context.Background(), sampleInput("7,0\n"))
	assert.ErrorContains(t, err, "outside the memory space")
}
