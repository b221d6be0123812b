package maze

// edge is an optional passage to an orthogonal neighbour.
type edge struct {
	to Coordinate
	ok bool
}

// Cell is the connectivity record of a single grid position.
// It holds at most one passage per direction and the distance, in passages,
// to the exit along the unique path of the spanning tree.
type Cell struct {
	coordinates Coordinate
	edges       [directionCount]edge // Passages indexed by Direction
	openings    [directionCount]bool // Boundary sides open to the outside (entrance/exit)
	distance    int
}

// Coordinates returns the grid position the cell belongs to.
func (c Cell) Coordinates() Coordinate {
	return c.coordinates
}

// Edge returns the neighbour reached through the passage in direction d.
// The boolean is false when there is no passage that way.
func (c Cell) Edge(d Direction) (Coordinate, bool) {
	if !d.Valid() {
		return Coordinate{}, false
	}
	e := c.edges[d]
	return e.to, e.ok
}

// HasEdge reports whether there is a passage in direction d.
func (c Cell) HasEdge(d Direction) bool {
	_, ok := c.Edge(d)
	return ok
}

// IsOpen reports whether side d is an opening onto the outside of the grid.
// Openings are markers for the entrance and exit; they are not passages.
func (c Cell) IsOpen(d Direction) bool {
	return d.Valid() && c.openings[d]
}

// HasWall reports whether side d is closed, i.e. neither a passage nor an opening.
func (c Cell) HasWall(d Direction) bool {
	return !c.HasEdge(d) && !c.IsOpen(d)
}

// Distance returns the number of passages between the cell and the exit.
func (c Cell) Distance() int {
	return c.distance
}

// Neighbors returns the cells reachable through a passage, in Directions order.
func (c Cell) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, directionCount)
	for _, d := range Directions {
		if to, ok := c.Edge(d); ok {
			neighbors = append(neighbors, to)
		}
	}
	return neighbors
}

// EdgeCount returns the number of passages leaving the cell.
func (c Cell) EdgeCount() int {
	n := 0
	for _, e := range c.edges {
		if e.ok {
			n++
		}
	}
	return n
}

func (c *Cell) addEdge(d Direction, to Coordinate) {
	c.edges[d] = edge{to: to, ok: true}
}
