// Package core provides the grid and geometry primitives shared by every puzzle.
// It stays free of I/O and logging so solvers can compose it freely and tests
// can exercise it without any setup.
package core

import "golang.org/x/exp/constraints"

// Rect represents an axis-aligned area of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Coord) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Abs returns the absolute value of a signed integer.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a - b| as an unsigned value.
func AbsDiff[T constraints.Signed](a, b T) uint {
	if a > b {
		return uint(a - b)
	}
	return uint(b - a)
}

// WrapVal maps val into [0, size) using Euclidean modulo, so negative values
// wrap around from the top. size must be positive.
func WrapVal[T constraints.Integer](val, size T) T {
	m := val % size
	if m < 0 {
		m += size
	}
	return m
}
