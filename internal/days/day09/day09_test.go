package day09

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

func TestParts(t *testing.T) {
	ctx := context.Background()
	in := registry.Input{Text: "2333133121414131402\n"}

	got, err := compactBlocks(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("1928"), got)

	got, err = compactFiles(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("2858"), got)
}

func TestSmallDisk(t *testing.T) {
	// 0..111....22222 compacts to 022111222
	got, err := compactBlocks(context.Background(), registry.Input{Text: "12345"})
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("60"), got)
}

func TestInvalidDigit(t *testing.T) {
	_, err := compactFiles(context.Background(), registry.Input{Text: "12a4"})
	assert.ErrorContains(t, err, "invalid digit")
}
