package game

import (
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Intent is a user action forwarded into the game by a driver.
type Intent int

// Intents understood by Apply. Anything else, Quit included, leaves the game untouched;
// ending the session is the driver's business.
const (
	IntentNone Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	AutoStep
	ToggleTrail
	Quit
)

var intentNames = map[Intent]string{
	IntentNone:  "none",
	MoveUp:      "up",
	MoveDown:    "down",
	MoveLeft:    "left",
	MoveRight:   "right",
	AutoStep:    "auto",
	ToggleTrail: "trail",
	Quit:        "quit",
}

// ParseIntent maps a name such as "up" or "auto" to its Intent.
// Unknown names map to IntentNone.
func ParseIntent(s string) Intent {
	s = strings.ToLower(strings.TrimSpace(s))
	for intent, name := range intentNames {
		if name == s {
			return intent
		}
	}
	return IntentNone
}

// String implements fmt.Stringer.
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the maze direction of a movement intent.
func (i Intent) Direction() (maze.Direction, bool) {
	switch i {
	case MoveUp:
		return maze.Up, true
	case MoveDown:
		return maze.Down, true
	case MoveLeft:
		return maze.Left, true
	case MoveRight:
		return maze.Right, true
	default:
		return 0, false
	}
}

// Apply performs intent on the game. Movement failures are returned to the
// caller with the game unchanged; unrecognised intents are ignored.
func (g *Game) Apply(intent Intent) error {
	if d, ok := intent.Direction(); ok {
		return g.MovePlayer(d)
	}

	switch intent {
	case AutoStep:
		return g.AutoMove()
	case ToggleTrail:
		g.ToggleBreadcrumbs()
	}
	return nil
}
