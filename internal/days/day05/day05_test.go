package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestSumMiddles(t *testing.T) {
	got, err := sumMiddles(sample, false)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("143"), got)

	got, err = sumMiddles(sample, true)
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("123"), got)
}

func TestMissingSection(t *testing.T) {
	_, err := sumMiddles("47|53\n97|13\n", false)
	assert.ErrorContains(t, err, "day05")
}
