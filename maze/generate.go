package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// frame is one level of the depth-first carve: the cell being expanded, its
// neighbour directions in random order and the index of the next one to try.
type frame struct {
	at   Coordinate
	dirs [directionCount]Direction
	next int
}

// NewRand returns a pseudo-random source for Generate. A zero seed picks one
// from the clock; any other seed reproduces the same sequence.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate carves a spanning tree into an empty maze with randomized recursive
// backtracking, starting at root with distance 0.
//
// Every visited cell shuffles its four directions, then tries them in that
// order: a neighbour inside the grid that has not been visited yet is carved
// into with a reciprocal passage and labelled with the parent's distance plus
// one. Neighbours outside the grid or already visited are skipped.
//
// The recursion is kept on an explicit stack so grid size does not bound the
// goroutine stack, but the visiting order and the order in which r is consumed
// are the same as the recursive formulation.
func (m *Maze) Generate(r *rand.Rand, root Coordinate) error {
	if m.generated {
		return ErrAlreadyGenerated
	}
	if !m.InBounds(root) {
		return fmt.Errorf("%w: root %s", ErrOutOfBounds, root)
	}

	visited := mapset.New[Coordinate]()
	work := stack.New[*frame]()
	work.Push(m.visit(r, visited, root, 0))

	for work.Size() > 0 {
		top := work.Peek()
		if top.next == len(top.dirs) {
			work.Pop()
			continue
		}

		d := top.dirs[top.next]
		top.next++

		to := top.at.Step(d)
		if !m.InBounds(to) || visited.Has(to) {
			continue
		}

		parent := m.cell(top.at)
		child := m.visit(r, visited, to, parent.distance+1)
		m.cell(to).addEdge(d.Opposite(), top.at)
		parent.addEdge(d, to)
		work.Push(child)
	}

	m.root = root
	m.generated = true
	return nil
}

// visit labels the cell at c and prepares its frame.
func (m *Maze) visit(r *rand.Rand, visited mapset.Set[Coordinate], c Coordinate, steps int) *frame {
	visited.Put(c)
	m.cell(c).distance = steps

	f := &frame{at: c, dirs: Directions}
	r.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}
