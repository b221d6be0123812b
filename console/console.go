// Package console drives a game from a line-oriented terminal: manual play
// from typed commands, or watching the solver walk the maze.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solver"
)

// Cell marks, by decreasing precedence.
const (
	PlayerMark = "@"
	ExitMark   = "E"
	TrailMark  = "."
)

const help = "commands: w/a/s/d move, x auto-step, b toggle trail, q quit"

var keyIntents = map[string]game.Intent{
	"w": game.MoveUp,
	"a": game.MoveLeft,
	"s": game.MoveDown,
	"d": game.MoveRight,
	"x": game.AutoStep,
	"b": game.ToggleTrail,
	"q": game.Quit,
}

// Render draws the maze with the player, the exit and, when visible, the trail.
func Render(g *game.Game) string {
	trail := make(map[maze.Coordinate]struct{})
	if crumbs, ok := g.Breadcrumbs(); ok {
		for _, c := range crumbs {
			trail[c] = struct{}{}
		}
	}

	return g.Maze().RenderWith(func(c maze.Coordinate) string {
		switch {
		case c == g.Player():
			return PlayerMark
		case c == g.End():
			return ExitMark
		}
		if _, ok := trail[c]; ok {
			return TrailMark
		}
		return ""
	})
}

// ParseKey maps a typed command to an intent. Single keys from the help line
// and full intent names such as "up" are both accepted.
func ParseKey(s string) game.Intent {
	s = strings.ToLower(strings.TrimSpace(s))
	if intent, ok := keyIntents[s]; ok {
		return intent
	}
	return game.ParseIntent(s)
}

// Play reads one command per line from in and prints a frame to out after
// every command. It returns true once the player reaches the exit and false
// when the player quits or in is exhausted.
func Play(g *game.Game, in io.Reader, out io.Writer) (bool, error) {
	w := &frameWriter{out: out}
	w.frame(g)
	w.printf("%s\n", help)
	if g.Won() {
		w.printf("You escaped!\n")
		return true, w.err
	}

	scanner := bufio.NewScanner(in)
	for w.err == nil && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		intent := ParseKey(line)
		switch intent {
		case game.Quit:
			w.printf("Bye.\n")
			return false, w.err
		case game.IntentNone:
			w.printf("unknown command %q; %s\n", line, help)
			continue
		}

		if err := g.Apply(intent); err != nil {
			if !errors.Is(err, game.ErrNoPassage) {
				return false, err
			}
			w.printf("You can't go that way.\n")
			continue
		}

		w.frame(g)
		if g.Won() {
			w.printf("You escaped!\n")
			return true, w.err
		}
	}

	if w.err != nil {
		return false, w.err
	}
	return false, scanner.Err()
}

// Watch lets the solver walk the player to the exit, printing a frame and
// pausing for delay after every step.
func Watch(g *game.Game, out io.Writer, delay time.Duration) (bool, error) {
	w := &frameWriter{out: out}
	w.frame(g)

	steps := 0
	err := solver.Solve(g, func(s solver.Step) {
		steps++
		w.frame(g)
		w.printf("step %d: %s to %s\n", steps, s.Kind, s.To)
		if delay > 0 {
			time.Sleep(delay)
		}
	})
	if err != nil {
		return false, err
	}
	if w.err != nil {
		return false, w.err
	}

	w.printf("Solved in %d steps.\n", steps)
	return g.Won(), w.err
}

// frameWriter remembers the first write error so callers can check once.
type frameWriter struct {
	out io.Writer
	err error
}

func (w *frameWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *frameWriter) frame(g *game.Game) {
	w.printf("\n%s", Render(g))
}
