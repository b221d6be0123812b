package maze

import "fmt"

// Coordinate is a position in the grid. X grows to the right and Y grows downwards,
// so the top row of the maze is Y == 0.
type Coordinate struct {
	X int // Column index
	Y int // Row index
}

// Up returns the coordinate one row above c.
func (c Coordinate) Up() Coordinate {
	return Coordinate{X: c.X, Y: c.Y - 1}
}

// Down returns the coordinate one row below c.
func (c Coordinate) Down() Coordinate {
	return Coordinate{X: c.X, Y: c.Y + 1}
}

// Left returns the coordinate one column to the left of c.
func (c Coordinate) Left() Coordinate {
	return Coordinate{X: c.X - 1, Y: c.Y}
}

// Right returns the coordinate one column to the right of c.
func (c Coordinate) Right() Coordinate {
	return Coordinate{X: c.X + 1, Y: c.Y}
}

// Step returns the neighbouring coordinate in direction d.
// An unknown direction yields c itself.
func (c Coordinate) Step(d Direction) Coordinate {
	switch d {
	case Up:
		return c.Up()
	case Right:
		return c.Right()
	case Down:
		return c.Down()
	case Left:
		return c.Left()
	default:
		return c
	}
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four orthogonal directions.
type Direction int

// Directions in clockwise order. The order is also the priority used wherever
// a fixed enumeration of a cell's sides is needed.
const (
	Up Direction = iota
	Right
	Down
	Left

	directionCount = 4
)

// Directions lists every direction in clockwise order starting at Up.
var Directions = [directionCount]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
