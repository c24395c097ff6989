package core

// Dir represents a compass direction on the grid.
// The four cardinal directions come first, then the four diagonals; both
// groups are ordered clockwise so quarter turns are index arithmetic.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
	DirUpRight
	DirDownRight
	DirDownLeft
	DirUpLeft
)

// Rotation is a quarter turn applied to a Dir.
type Rotation uint8

const (
	RotateLeft Rotation = iota
	RotateRight
)

// Directions4 lists the cardinal directions clockwise from Up.
var Directions4 = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// Directions8 lists all directions clockwise from Up.
var Directions8 = [8]Dir{DirUp, DirUpRight, DirRight, DirDownRight, DirDown, DirDownLeft, DirLeft, DirUpLeft}

var dirDeltas = [8]Coord{
	DirUp:        {X: 0, Y: -1},
	DirRight:     {X: 1, Y: 0},
	DirDown:      {X: 0, Y: 1},
	DirLeft:      {X: -1, Y: 0},
	DirUpRight:   {X: 1, Y: -1},
	DirDownRight: {X: 1, Y: 1},
	DirDownLeft:  {X: -1, Y: 1},
	DirUpLeft:    {X: -1, Y: -1},
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUpRight:
		return "UpRight"
	case DirDownRight:
		return "DownRight"
	case DirDownLeft:
		return "DownLeft"
	case DirUpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// Char returns the arrow character used by puzzle inputs for cardinal
// directions, and '*' for diagonals.
func (d Dir) Char() rune {
	switch d {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '*'
	}
}

// ParseDir converts an arrow character (^ > v <) to a Dir.
func ParseDir(r rune) (Dir, bool) {
	switch r {
	case '^':
		return DirUp, true
	case '>':
		return DirRight, true
	case 'v':
		return DirDown, true
	case '<':
		return DirLeft, true
	default:
		return DirUp, false
	}
}

// Delta returns the unit offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() Coord {
	if int(d) >= len(dirDeltas) {
		return Zero
	}
	return dirDeltas[d]
}

// IsDiagonal reports whether d is one of the four diagonal directions.
func (d Dir) IsDiagonal() bool {
	return d >= DirUpRight
}

// Turn rotates d by 90 degrees. Cardinal directions stay cardinal and
// diagonals stay diagonal.
func (d Dir) Turn(r Rotation) Dir {
	steps := Dir(1)
	if r == RotateLeft {
		steps = 3
	}
	return d.rotate(steps)
}

// Opposite returns the direction rotated by 180 degrees.
func (d Dir) Opposite() Dir {
	return d.rotate(2)
}

// Combined returns the sum of both deltas, e.g. Up combined with Right is the
// up-right diagonal offset.
func (d Dir) Combined(other Dir) Coord {
	return d.Delta().Add(other.Delta())
}

func (d Dir) rotate(quarters Dir) Dir {
	base := DirUp
	if d.IsDiagonal() {
		base = DirUpRight
	}
	return base + (d-base+quarters)%4
}
