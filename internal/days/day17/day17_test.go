package day17

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/xmas/internal/registry"
)

func TestComputerInstructions(t *testing.T) {
	tests := []struct {
		name   string
		vm     Computer
		output []uint8
		checkB bool
		wantB  uint64
		checkA bool
		wantA  uint64
	}{
		{name: "bst", vm: Computer{C: 9, Program: []uint8{2, 6}}, checkB: true, wantB: 1},
		{name: "out", vm: Computer{A: 10, Program: []uint8{5, 0, 5, 1, 5, 4}}, output: []uint8{0, 1, 2}},
		{
			name:   "loop",
			vm:     Computer{A: 2024, Program: []uint8{0, 1, 5, 4, 3, 0}},
			output: []uint8{4, 2, 5, 6, 7, 7, 7, 7, 3, 1, 0},
			checkA: true,
			wantA:  0,
		},
		{name: "bxl", vm: Computer{B: 29, Program: []uint8{1, 7}}, checkB: true, wantB: 26},
		{name: "bxc", vm: Computer{B: 2024, C: 43690, Program: []uint8{4, 0}}, checkB: true, wantB: 44354},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vm := tc.vm
			out, err := vm.Run(context.Background(), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.output, out)
			if tc.checkB {
				assert.Equal(t, tc.wantB, vm.B)
			}
			if tc.checkA {
				assert.Equal(t, tc.wantA, vm.A)
			}
		})
	}
}

func TestStep(t *testing.T) {
	vm := Computer{A: 10, Program: []uint8{5, 4, 3, 0}}

	res, err := vm.Step()
	require.NoError(t, err)
	assert.Equal(t, StepResult{Output: 2, HasOutput: true}, res)
	assert.Equal(t, 2, vm.PC)

	res, err = vm.Step() // jnz with A != 0 jumps back to 0
	require.NoError(t, err)
	assert.False(t, res.HasOutput)
	assert.Equal(t, 0, vm.PC)

	halted := Computer{Program: []uint8{3, 0}}
	_, err = halted.Step()
	require.NoError(t, err)
	res, err = halted.Step()
	require.NoError(t, err)
	assert.True(t, res.Halted)
}

func TestInvalidOperand(t *testing.T) {
	vm := Computer{Program: []uint8{2, 7}}
	_, err := vm.Run(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidOperand)
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := runProgram(ctx, registry.Input{Text: "Register A: 729\nRegister B: 0\nRegister C: 0\n\nProgram: 0,1,5,4,3,0\n"})
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("4,6,3,5,6,3,5,2,1,0"), got)

	got, err = findQuine(ctx, registry.Input{Text: "Register A: 2024\nRegister B: 0\nRegister C: 0\n\nProgram: 0,3,5,4,3,0\n"})
	require.NoError(t, err)
	assert.Equal(t, registry.Answer("117440"), got)
}

func TestMalformedProgram(t *testing.T) {
	_, err := runProgram(context.Background(), registry.Input{Text: "Register A: 1\n\nProgram: 0,8\n"})
	assert.ErrorContains(t, err, "malformed program")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// jnz 0 with A != 0 never halts and never prints.
	vm := Computer{A: 1, Program: []uint8{3, 0}}
	_, err := vm.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = runProgram(ctx, registry.Input{Text: "Register A: 1\nRegister B: 0\nRegister C: 0\n\nProgram: 3,0\n"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = findQuine(ctx, registry.Input{Text: "Register A: 1\nRegister B: 0\nRegister C: 0\n\nProgram: 3,0\n"})
	assert.ErrorIs(t, err, context.Canceled)
}
