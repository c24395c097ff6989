package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an attempt to parse a grid from an empty string.
	ErrEmptyInput = errors.New("core: cannot parse an empty string to a grid")
	// ErrInconsistentRowLength indicates a row whose length differs from the first row.
	ErrInconsistentRowLength = errors.New("core: inconsistent row length")
	// ErrInvalidTile indicates a character the tile codec does not understand.
	ErrInvalidTile = errors.New("core: invalid tile")
)

// RowLengthError carries the offending row length and the width fixed by the first row.
type RowLengthError struct {
	Current  int
	Expected int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("core: inconsistent row length: current %d, expected %d", e.Current, e.Expected)
}

func (e *RowLengthError) Unwrap() error {
	return ErrInconsistentRowLength
}

// TileError reports the character that failed to decode and where it was found.
type TileError struct {
	Char rune
	Pos  Coord
}

func (e *TileError) Error() string {
	return fmt.Sprintf("core: invalid tile %q at %v", e.Char, e.Pos)
}

func (e *TileError) Unwrap() error {
	return ErrInvalidTile
}
