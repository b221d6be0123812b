/*
Package maze provides tools for creating and inspecting perfect rectangular mazes.

A Maze is a dense grid of Cell values addressed by Coordinate. Passages between
cells are stored on both sides as neighbour coordinates, never as references,
so the grid is the sole owner of every cell.

Mazes are carved once by Generate, a randomized depth-first spanning-tree
construction rooted at the exit. Because generation starts at the exit, every
cell is labelled with its distance to the exit in the same pass.

The package also offers an independent breadth-first distance computation and
Verify, which checks the spanning-tree invariants of a generated maze, plus an
ASCII rendering of the topology.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxDimension = 1024
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("coordinate is outside the maze")
	ErrNotBoundary       = errors.New("side is not on the maze boundary")
	ErrAlreadyGenerated  = errors.New("maze has already been generated")
	ErrNotGenerated      = errors.New("maze has not been generated")
	ErrNotSpanningTree   = errors.New("maze is not a spanning tree")
)

// Maze is a height×width grid of cells.
type Maze struct {
	height    int
	width     int
	grid      [][]Cell
	root      Coordinate // The exit the spanning tree is rooted at
	generated bool
}

// New allocates an empty maze: no passages and every distance set to zero.
// Both dimensions must be positive.
func New(height, width int) (*Maze, error) {
	if min(height, width) <= 0 || max(height, width) > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}

	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Cell{coordinates: Coordinate{X: x, Y: y}}
		}
	}

	return &Maze{
		height: height,
		width:  width,
		grid:   grid,
	}, nil
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Generated reports whether Generate has completed on this maze.
func (m *Maze) Generated() bool {
	return m.generated
}

// Root returns the coordinate generation was rooted at, which is the exit.
func (m *Maze) Root() (Coordinate, error) {
	if !m.generated {
		return Coordinate{}, ErrNotGenerated
	}
	return m.root, nil
}

// InBounds reports whether c lies inside the grid.
func (m *Maze) InBounds(c Coordinate) bool {
	return c.Y >= 0 && c.Y < m.height && c.X >= 0 && c.X < m.width
}

// Cell returns a copy of the cell at c.
func (m *Maze) Cell(c Coordinate) (Cell, bool) {
	cell := m.cell(c)
	if cell == nil {
		return Cell{}, false
	}
	return *cell, true
}

func (m *Maze) cell(c Coordinate) *Cell {
	if !m.InBounds(c) {
		return nil
	}
	return &m.grid[c.Y][c.X]
}

// EdgeCount returns the number of undirected passages in the maze.
func (m *Maze) EdgeCount() int {
	n := 0
	for y := range m.grid {
		for x := range m.grid[y] {
			n += m.grid[y][x].EdgeCount()
		}
	}
	return n / 2
}

// OpenEntrance marks side d of the cell at c as an opening onto the outside.
// The side must face the boundary of the grid. Openings are visual markers only
// and take no part in connectivity or distances.
func (m *Maze) OpenEntrance(c Coordinate, d Direction) error {
	cell := m.cell(c)
	if cell == nil {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if !d.Valid() || m.InBounds(c.Step(d)) {
		return fmt.Errorf("%w: %s of %s", ErrNotBoundary, d, c)
	}

	cell.openings[d] = true
	return nil
}

// RenderWith draws the maze as ASCII art. mark is consulted for every cell and
// may return a single character to draw in its centre; an empty string leaves
// the cell blank. A nil mark draws the bare topology.
func (m *Maze) RenderWith(mark func(Coordinate) string) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.width; x++ {
		if m.grid[0][x].IsOpen(Up) {
			b.WriteString("   +")
		} else {
			b.WriteString("---+")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.height; y++ {
		// Cell rows
		if m.grid[y][0].HasWall(Left) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.width; x++ {
			cell := m.grid[y][x]
			symbol := " "
			if mark != nil {
				if s := mark(cell.coordinates); s != "" {
					symbol = s
				}
			}
			b.WriteString(" " + symbol + " ")

			if cell.HasWall(Right) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.grid[y][x].HasWall(Down) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.RenderWith(nil)
}
