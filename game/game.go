// Package game holds the state of a single maze play session: the maze, the
// player, the exit and the breadcrumb trail of the path currently walked.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Game-related errors.
var (
	ErrNilMaze           = errors.New("maze is nil")
	ErrInvalidPosition   = errors.New("position is outside of the maze")
	ErrRootMismatch      = errors.New("exit does not match the root of the generated maze")
	ErrNoPassage         = errors.New("cannot move player in that direction")
	ErrPlayerOutsideMaze = errors.New("player is outside of the maze")
)

// Option configures a Game at construction.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	breadcrumbs bool
	start       *maze.Coordinate
	end         *maze.Coordinate
}

// WithRand sets the source used to pick the start and exit and to generate the maze.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithBreadcrumbs sets whether the trail is exposed to observers initially.
func WithBreadcrumbs(enabled bool) Option {
	return func(o *options) {
		o.breadcrumbs = enabled
	}
}

// WithStart places the player at c instead of a random cell of the top row.
func WithStart(c maze.Coordinate) Option {
	return func(o *options) {
		o.start = &c
	}
}

// WithEnd places the exit at c instead of a random cell of the bottom row.
func WithEnd(c maze.Coordinate) Option {
	return func(o *options) {
		o.end = &c
	}
}

// Game is a single-player maze session. It is not safe for concurrent use;
// the session driver owns it exclusively.
type Game struct {
	maze            *maze.Maze        // The maze, exclusively owned by the game.
	player          maze.Coordinate   // Current player position.
	end             maze.Coordinate   // Exit position, fixed for the session.
	breadcrumbs     []maze.Coordinate // Simple path walked so far, oldest first.
	showBreadcrumbs bool              // Whether the trail is exposed to observers.
	version         int64             // Incremented on every state change.
}

// New creates a Game around m.
//
// Unless overridden by options, the player starts on a random cell of the top
// row and the exit is a random cell of the bottom row. An empty maze is then
// generated rooted at the exit; a maze that is already generated is accepted
// as is and its root becomes the exit. The start cell gets an entrance opening
// on its top side and the exit an opening on its bottom side, when those sides
// face the boundary.
func New(m *maze.Maze, opts ...Option) (*Game, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = maze.NewRand(0)
	}

	var start maze.Coordinate
	if o.start != nil {
		start = *o.start
	} else {
		start = maze.Coordinate{X: o.rng.Intn(m.Width()), Y: 0}
	}

	var end maze.Coordinate
	root, err := m.Root()
	switch {
	case err == nil && o.end != nil && *o.end != root:
		return nil, fmt.Errorf("%w: exit %s, root %s", ErrRootMismatch, *o.end, root)
	case err == nil:
		end = root
	case o.end != nil:
		end = *o.end
	default:
		end = maze.Coordinate{X: o.rng.Intn(m.Width()), Y: m.Height() - 1}
	}

	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidPosition, start)
	}
	if !m.InBounds(end) {
		return nil, fmt.Errorf("%w: exit %s", ErrInvalidPosition, end)
	}

	if !m.Generated() {
		if err := m.Generate(o.rng, end); err != nil {
			return nil, fmt.Errorf("generating maze: %w", err)
		}
	}

	if start.Y == 0 {
		if err := m.OpenEntrance(start, maze.Up); err != nil {
			return nil, err
		}
	}
	if end.Y == m.Height()-1 {
		if err := m.OpenEntrance(end, maze.Down); err != nil {
			return nil, err
		}
	}

	return &Game{
		maze:            m,
		player:          start,
		end:             end,
		breadcrumbs:     make([]maze.Coordinate, 0, m.Width()*m.Height()),
		showBreadcrumbs: o.breadcrumbs,
	}, nil
}

// Maze returns the maze. Callers must treat it as read-only.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}

// Player returns the current player position.
func (g *Game) Player() maze.Coordinate {
	return g.player
}

// End returns the exit position.
func (g *Game) End() maze.Coordinate {
	return g.end
}

// Won reports whether the player stands on the exit.
func (g *Game) Won() bool {
	return g.player == g.end
}

// Version returns a counter incremented on every state change.
func (g *Game) Version() int64 {
	return g.version
}

// Breadcrumbs returns a copy of the trail when it is enabled.
// The boolean is false, and the slice nil, when the trail is hidden.
func (g *Game) Breadcrumbs() ([]maze.Coordinate, bool) {
	if !g.showBreadcrumbs {
		return nil, false
	}

	trail := make([]maze.Coordinate, len(g.breadcrumbs))
	copy(trail, g.breadcrumbs)
	return trail, true
}

// BreadcrumbsEnabled reports whether the trail is exposed to observers.
func (g *Game) BreadcrumbsEnabled() bool {
	return g.showBreadcrumbs
}

// ToggleBreadcrumbs shows or hides the trail. The trail itself is untouched.
func (g *Game) ToggleBreadcrumbs() {
	g.showBreadcrumbs = !g.showBreadcrumbs
	g.version++
}

// MovePlayer moves the player one cell through the passage in direction d.
// It returns ErrNoPassage, leaving the game unchanged, when there is none.
func (g *Game) MovePlayer(d maze.Direction) error {
	cur, ok := g.maze.Cell(g.player)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlayerOutsideMaze, g.player)
	}

	next, ok := cur.Edge(d)
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrNoPassage, d, g.player)
	}

	g.updatePlayer(next)
	return nil
}

// MoveTo moves the player to c, which must be joined to the current cell by a passage.
func (g *Game) MoveTo(c maze.Coordinate) error {
	cur, ok := g.maze.Cell(g.player)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlayerOutsideMaze, g.player)
	}

	for _, d := range maze.Directions {
		if next, ok := cur.Edge(d); ok && next == c {
			g.updatePlayer(next)
			return nil
		}
	}

	return fmt.Errorf("%w: %s to %s", ErrNoPassage, g.player, c)
}

// AutoMove takes one step towards the exit by moving to the neighbour with the
// strictly smallest distance label. At the exit no neighbour is closer, so the
// call leaves the player in place.
func (g *Game) AutoMove() error {
	cur, ok := g.maze.Cell(g.player)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlayerOutsideMaze, g.player)
	}

	minSteps := cur.Distance()
	next, found := maze.Coordinate{}, false
	for _, c := range cur.Neighbors() {
		neighbor, ok := g.maze.Cell(c)
		if !ok {
			return fmt.Errorf("%w: passage from %s to %s", maze.ErrOutOfBounds, g.player, c)
		}
		if neighbor.Distance() < minSteps {
			minSteps = neighbor.Distance()
			next, found = c, true
		}
	}

	if found {
		g.updatePlayer(next)
	}
	return nil
}

// updatePlayer moves the player and keeps the trail equal to the simple path
// walked: stepping back onto the last breadcrumb consumes it, any other step
// leaves the previous position behind.
func (g *Game) updatePlayer(next maze.Coordinate) {
	if n := len(g.breadcrumbs); n > 0 && g.breadcrumbs[n-1] == next {
		g.breadcrumbs = g.breadcrumbs[:n-1]
	} else {
		g.breadcrumbs = append(g.breadcrumbs, g.player)
	}

	g.player = next
	g.version++
}
