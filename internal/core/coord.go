package core

import "fmt"

// Coord represents a 2D integer vector: a grid cell or an offset between cells.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

var (
	// Zero is the origin.
	Zero = Coord{}
	// One is (1,1), handy for turning a size into its last cell.
	One = Coord{X: 1, Y: 1}
)

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the componentwise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the componentwise difference c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale multiplies both components by n. Negative n reverses the vector.
func (c Coord) Scale(n int) Coord {
	return Coord{X: c.X * n, Y: c.Y * n}
}

// Neg returns the vector pointing the other way.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	return c.Add(d.Delta())
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) uint {
	return AbsDiff(c.X, other.X) + AbsDiff(c.Y, other.Y)
}

// ManhattanMagnitude returns the Manhattan distance from the origin.
func (c Coord) ManhattanMagnitude() uint {
	return c.Manhattan(Zero)
}

// Wrap maps both components into [0, size) as if the plane were a torus.
func (c Coord) Wrap(size Coord) Coord {
	return Coord{X: WrapVal(c.X, size.X), Y: WrapVal(c.Y, size.Y)}
}
