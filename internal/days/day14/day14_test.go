package day14

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/config"
	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
`

func sampleInput(text string) registry.Input {
	cfg := config.Default()
	config.ApplySample(&cfg)
	return registry.Input{Text: text, Config: cfg.Days}
}

func TestSafetyFactor(t *testing.T) {
	got, err := safetyFactor(context.Background(), sampleInput(sample))
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("12"), got)
}

func TestRobotWraps(t *testing.T) {
	r := robot{start: core.C(4, 1), velocity: core.C(2, -3)}
	space := core.C(11, 7)

	assert.Equal(t, core.C(6, 5), r.at(1, space))
	assert.Equal(t, core.C(3, 0), r.at(5, space))

	r = robot{start: core.C(2, 4), velocity: core.C(2, -3)}
	assert.Equal(t, core.C(1, 3), r.at(5, space))
}

func TestFirstDistinctSecond(t *testing.T) {
	got, err := firstDistinctSecond(context.Background(), sampleInput("p=0,0 v=1,0\np=0,0 v=2,0\n"))
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("1"), got)

	// Identical robots never separate.
	_, err = firstDistinctSecond(context.Background(), sampleInput("p=1,1 v=1,1\np=1,1 v=1,1\n"))
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestMalformedRobot(t *testing.T) {
	_, err := safetyFactor(context.Background(), sampleInput("p=0,4 v=3\n"))
	assert.ErrorContains(t, err, "malformed robot")
}
