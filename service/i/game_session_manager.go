package i

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
)

// GameSnapshot is a point-in-time copy of a session's observable state.
type GameSnapshot struct {
	ID                 uuid.UUID
	Height             int
	Width              int
	Player             maze.Coordinate
	End                maze.Coordinate
	Won                bool
	Version            int64
	BreadcrumbsVisible bool
	Breadcrumbs        []maze.Coordinate // nil when hidden
	Board              string            // ASCII rendering of the maze and its marks
}

// GameSessionManager owns the in-memory game sessions.
type GameSessionManager interface {
	// NewSession generates a maze and starts a game on it. A nil dimension
	// falls back to the manager's default; any other value is used as given.
	NewSession(height, width *int, breadcrumbs bool) (GameSnapshot, error)

	// Snapshot returns the current state of a session.
	Snapshot(id uuid.UUID) (GameSnapshot, error)

	// Apply forwards a user intent to a session. The snapshot reflects the
	// state after the intent, also when the intent was rejected.
	Apply(id uuid.UUID, intent game.Intent) (GameSnapshot, error)

	// Solve walks the session's player to the exit and returns every step.
	Solve(id uuid.UUID) ([]solver.Step, GameSnapshot, error)

	// End discards a session.
	End(id uuid.UUID) error
}
