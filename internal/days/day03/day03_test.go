package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name         string
		memory       string
		conditionals bool
		want         registry.Answer
	}{
		{"plain", "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))", false, "161"},
		{"conditionals", "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))", true, "48"},
		{"conditionals ignored", "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))", false, "161"},
		{"too many digits", "mul(1234,2)mul(2,3)", false, "6"},
		{"spaces rejected", "mul( 2,3)mul(4,5)", false, "20"},
	}

	s := newScanner()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.sum(tc.memory, tc.conditionals)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
