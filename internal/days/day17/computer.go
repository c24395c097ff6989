package day17

import (
	"context"
	"errors"
	"fmt"
)

// Opcodes of the 3-bit computer.
const (
	opADV uint8 = iota
	opBXL
	opBST
	opJNZ
	opBXC
	opOUT
	opBDV
	opCDV
)

// ErrInvalidOperand is returned for the reserved combo operand 7.
var ErrInvalidOperand = errors.New("day17: invalid combo operand")

// Computer is a 3-bit machine with three unbounded registers.
type Computer struct {
	A, B, C uint64
	PC      int
	Program []uint8
}

// StepResult describes the effect of a single instruction.
type StepResult struct {
	Halted    bool
	Output    uint8
	HasOutput bool
}

func (c *Computer) combo(operand uint8) (uint64, error) {
	switch operand {
	case 4:
		return c.A, nil
	case 5:
		return c.B, nil
	case 6:
		return c.C, nil
	case 7:
		return 0, fmt.Errorf("%w at pc %d", ErrInvalidOperand, c.PC)
	}
	return uint64(operand), nil
}

// dv divides A by 2^combo(operand), truncating.
func (c *Computer) dv(operand uint8) (uint64, error) {
	power, err := c.combo(operand)
	if err != nil {
		return 0, err
	}
	if power >= 64 {
		return 0, nil
	}
	return c.A >> power, nil
}

// Step executes the instruction at PC. Reading past the end of the program
// halts the machine; a missing operand reads as 0.
func (c *Computer) Step() (StepResult, error) {
	if c.PC < 0 || c.PC >= len(c.Program) {
		return StepResult{Halted: true}, nil
	}
	op := c.Program[c.PC]
	var operand uint8
	if c.PC+1 < len(c.Program) {
		operand = c.Program[c.PC+1]
	}

	var res StepResult
	next := c.PC + 2
	var err error
	switch op {
	case opADV:
		c.A, err = c.dv(operand)
	case opBXL:
		c.B ^= uint64(operand)
	case opBST:
		var v uint64
		v, err = c.combo(operand)
		c.B = v % 8
	case opJNZ:
		if c.A != 0 {
			next = int(operand)
		}
	case opBXC:
		c.B ^= c.C
	case opOUT:
		var v uint64
		v, err = c.combo(operand)
		res.Output, res.HasOutput = uint8(v%8), true
	case opBDV:
		c.B, err = c.dv(operand)
	case opCDV:
		c.C, err = c.dv(operand)
	default:
		return res, fmt.Errorf("day17: invalid opcode %d at pc %d", op, c.PC)
	}
	if err != nil {
		return StepResult{}, err
	}
	c.PC = next
	return res, nil
}

// Run executes until the machine halts and returns everything it printed.
// maxOutputs stops the run early once that many values were printed; 0 means no limit.
// A program that never halts runs until ctx is done.
func (c *Computer) Run(ctx context.Context, maxOutputs int) ([]uint8, error) {
	var out []uint8
	for steps := 1; ; steps++ {
		if steps%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}
		res, err := c.Step()
		if err != nil {
			return out, err
		}
		if res.Halted {
			return out, nil
		}
		if res.HasOutput {
			out = append(out, res.Output)
			if maxOutputs > 0 && len(out) >= maxOutputs {
				return out, nil
			}
		}
	}
}
