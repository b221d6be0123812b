// Package solver finds the exit of a maze the way a walker with no map would:
// depth-first, using only the passages, backtracking out of dead ends.
// Unlike the game's auto-move it never reads distance labels.
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	ErrNoSolution = errors.New("no path to the exit")
)

// StepKind tells whether a step explores a new cell or returns from a dead end.
type StepKind int

const (
	Forward StepKind = iota
	Backtrack
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if k == Backtrack {
		return "backtrack"
	}
	return "forward"
}

// Step is one observable move of the player made by the solver.
type Step struct {
	Kind StepKind
	To   maze.Coordinate
}

// Solve walks the player of g to the exit by depth-first search, calling
// onStep after every move so a driver can render and pause. Candidates are
// tried in maze.Directions order, never immediately back through the passage
// just entered. Solve returns ErrNoSolution if the search is exhausted, which
// only happens when the maze is not connected.
func Solve(g *game.Game, onStep func(Step)) error {
	if onStep == nil {
		onStep = func(Step) {}
	}

	s := &search{game: g, onStep: onStep}
	found, err := s.explore(g.Player(), nil)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: from %s to %s", ErrNoSolution, g.Player(), g.End())
	}
	return nil
}

// Record solves g and returns every step taken, in order.
func Record(g *game.Game) ([]Step, error) {
	var steps []Step
	err := Solve(g, func(s Step) {
		steps = append(steps, s)
	})
	return steps, err
}

type search struct {
	game   *game.Game
	onStep func(Step)
}

// explore searches from cur, having arrived from cameFrom (nil at the start).
func (s *search) explore(cur maze.Coordinate, cameFrom *maze.Coordinate) (bool, error) {
	if cur == s.game.End() {
		return true, nil
	}

	cell, ok := s.game.Maze().Cell(cur)
	if !ok {
		return false, fmt.Errorf("%w: %s", game.ErrPlayerOutsideMaze, cur)
	}

	for _, next := range cell.Neighbors() {
		if cameFrom != nil && next == *cameFrom {
			continue
		}

		if err := s.move(Forward, next); err != nil {
			return false, err
		}
		found, err := s.explore(next, &cur)
		if err != nil || found {
			return found, err
		}
		if err := s.move(Backtrack, cur); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (s *search) move(kind StepKind, to maze.Coordinate) error {
	if err := s.game.MoveTo(to); err != nil {
		return err
	}
	s.onStep(Step{Kind: kind, To: to})
	return nil
}
