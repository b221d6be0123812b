package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Unreachable is the distance reported by Distances for cells with no path to the root.
const Unreachable = -1

// Distances computes, by breadth-first search over the passages only, the
// number of passages between every cell and root. It ignores the labels stored
// by Generate, so it can be used to check them. The result is indexed [y][x].
func (m *Maze) Distances(root Coordinate) ([][]int, error) {
	if !m.InBounds(root) {
		return nil, fmt.Errorf("%w: root %s", ErrOutOfBounds, root)
	}

	dist := make([][]int, m.height)
	for y := range dist {
		dist[y] = make([]int, m.width)
		for x := range dist[y] {
			dist[y][x] = Unreachable
		}
	}

	seen := mapset.New[Coordinate]()
	frontier := queue.New[Coordinate]()
	seen.Put(root)
	dist[root.Y][root.X] = 0
	frontier.Enqueue(root)

	for !frontier.Empty() {
		at := frontier.Dequeue()
		for _, next := range m.cell(at).Neighbors() {
			if !m.InBounds(next) || seen.Has(next) {
				continue
			}
			seen.Put(next)
			dist[next.Y][next.X] = dist[at.Y][at.X] + 1
			frontier.Enqueue(next)
		}
	}

	return dist, nil
}

// Verify checks that a generated maze is a spanning tree rooted at its exit:
// every passage is reciprocal and joins orthogonal neighbours, there are
// exactly height*width-1 passages, every cell is reachable from the exit and
// every stored distance equals the breadth-first distance to the exit.
func (m *Maze) Verify() error {
	if !m.generated {
		return ErrNotGenerated
	}

	for y := range m.grid {
		for x := range m.grid[y] {
			cell := m.grid[y][x]
			for _, d := range Directions {
				to, ok := cell.Edge(d)
				if !ok {
					continue
				}
				if to != cell.coordinates.Step(d) || !m.InBounds(to) {
					return fmt.Errorf("%w: passage %s of %s leads to %s", ErrNotSpanningTree, d, cell.coordinates, to)
				}
				if back, ok := m.cell(to).Edge(d.Opposite()); !ok || back != cell.coordinates {
					return fmt.Errorf("%w: passage %s of %s is not reciprocal", ErrNotSpanningTree, d, cell.coordinates)
				}
			}
		}
	}

	if edges, want := m.EdgeCount(), m.height*m.width-1; edges != want {
		return fmt.Errorf("%w: %d passages, want %d", ErrNotSpanningTree, edges, want)
	}

	dist, err := m.Distances(m.root)
	if err != nil {
		return err
	}
	for y := range m.grid {
		for x := range m.grid[y] {
			switch cell := m.grid[y][x]; {
			case dist[y][x] == Unreachable:
				return fmt.Errorf("%w: %s is unreachable from the exit", ErrNotSpanningTree, cell.coordinates)
			case dist[y][x] != cell.distance:
				return fmt.Errorf("%w: %s is labelled %d, actual distance %d", ErrNotSpanningTree, cell.coordinates, cell.distance, dist[y][x])
			}
		}
	}

	return nil
}
