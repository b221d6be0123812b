package service

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+msg)
}

func (l *recordingLogger) Debug(msg string) { l.record("DEBUG", msg) }
func (l *recordingLogger) Info(msg string)  { l.record("INFO", msg) }
func (l *recordingLogger) Warn(msg string)  { l.record("WARN", msg) }
func (l *recordingLogger) Error(msg string) { l.record("ERROR", msg) }

func (l *recordingLogger) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func intPtr(v int) *int { return &v }

func newManager(t *testing.T) (*GameSessionManager, *recordingLogger) {
	t.Helper()
	log := &recordingLogger{}
	gsm, err := NewGameSessionManager(&Config{
		RandFactory:   func() *rand.Rand { return maze.NewRand(42) },
		DefaultHeight: 6,
		DefaultWidth:  9,
		SessionTTL:    time.Hour,
		Logger:        log,
	})
	require.NoError(t, err)
	t.Cleanup(gsm.StopAll)
	return gsm, log
}

func TestNewGameSessionManager(t *testing.T) {
	_, err := NewGameSessionManager(&Config{})
	assert.ErrorIs(t, err, ErrNilLogger)

	t.Run("tiny ttl keeps a positive reap interval", func(t *testing.T) {
		gsm, err := NewGameSessionManager(&Config{SessionTTL: time.Nanosecond, Logger: &recordingLogger{}})
		require.NoError(t, err)
		// Give the reaper goroutine time to create its ticker.
		time.Sleep(20 * time.Millisecond)
		gsm.StopAll()
	})
}

func TestReapInterval(t *testing.T) {
	tests := []struct {
		ttl      time.Duration
		expected time.Duration
	}{
		{time.Nanosecond, minReapInterval},
		{time.Second, minReapInterval},
		{time.Hour, 30 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, reapInterval(tt.ttl), tt.ttl.String())
	}
}

func TestNewSession(t *testing.T) {
	gsm, log := newManager(t)

	t.Run("defaults", func(t *testing.T) {
		snap, err := gsm.NewSession(nil, nil, false)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, snap.ID)
		assert.Equal(t, 6, snap.Height)
		assert.Equal(t, 9, snap.Width)
		assert.Zero(t, snap.Player.Y, "player starts on the top row")
		assert.Equal(t, 5, snap.End.Y, "exit is on the bottom row")
		assert.False(t, snap.Won)
		assert.Zero(t, snap.Version)
		assert.False(t, snap.BreadcrumbsVisible)
		assert.Nil(t, snap.Breadcrumbs)
		assert.Len(t, strings.Split(strings.TrimSpace(snap.Board), "\n"), 2*6+1)
		assert.True(t, log.contains("started new 6x9 game"))
	})

	t.Run("same seed, same maze", func(t *testing.T) {
		a, err := gsm.NewSession(intPtr(5), intPtr(5), true)
		require.NoError(t, err)
		b, err := gsm.NewSession(intPtr(5), intPtr(5), true)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.Board, b.Board)
		assert.True(t, a.BreadcrumbsVisible)
		assert.Empty(t, a.Breadcrumbs)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := gsm.NewSession(intPtr(-1), intPtr(4), false)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
		assert.True(t, log.contains("WARN creating maze"))
	})

	t.Run("explicit zero is not replaced by the default", func(t *testing.T) {
		_, err := gsm.NewSession(intPtr(0), nil, false)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

		_, err = gsm.NewSession(nil, intPtr(0), false)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("one dimension given", func(t *testing.T) {
		snap, err := gsm.NewSession(intPtr(3), nil, false)
		require.NoError(t, err)
		assert.Equal(t, 3, snap.Height)
		assert.Equal(t, 9, snap.Width)
	})
}

func TestApply(t *testing.T) {
	gsm, log := newManager(t)
	snap, err := gsm.NewSession(intPtr(7), intPtr(7), true)
	require.NoError(t, err)

	t.Run("rejected move leaves the game unchanged", func(t *testing.T) {
		// The start's top side is the entrance, which is not a passage.
		after, err := gsm.Apply(snap.ID, game.MoveUp)
		assert.ErrorIs(t, err, game.ErrNoPassage)
		assert.Equal(t, snap.Player, after.Player)
		assert.Zero(t, after.Version)
	})

	t.Run("auto-steps reach the exit", func(t *testing.T) {
		cur := snap
		for n := 0; !cur.Won; n++ {
			require.Less(t, n, 7*7, "auto-step must converge")
			cur, err = gsm.Apply(snap.ID, game.AutoStep)
			require.NoError(t, err)
		}
		assert.Equal(t, cur.End, cur.Player)
		assert.Len(t, cur.Breadcrumbs, int(cur.Version))
		assert.True(t, log.contains("won at version"))
	})

	t.Run("toggle trail", func(t *testing.T) {
		cur, err := gsm.Apply(snap.ID, game.ToggleTrail)
		require.NoError(t, err)
		assert.False(t, cur.BreadcrumbsVisible)
		assert.Nil(t, cur.Breadcrumbs)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := gsm.Apply(uuid.New(), game.AutoStep)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSolve(t *testing.T) {
	gsm, _ := newManager(t)
	snap, err := gsm.NewSession(intPtr(12), intPtr(15), false)
	require.NoError(t, err)

	steps, after, err := gsm.Solve(snap.ID)
	require.NoError(t, err)
	assert.True(t, after.Won)
	assert.NotEmpty(t, steps)
	assert.Equal(t, after.End, steps[len(steps)-1].To)
	assert.Equal(t, solver.Forward, steps[len(steps)-1].Kind)

	steps, _, err = gsm.Solve(snap.ID)
	require.NoError(t, err)
	assert.Empty(t, steps, "a won game needs no steps")

	_, _, err = gsm.Solve(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEnd(t *testing.T) {
	gsm, _ := newManager(t)
	snap, err := gsm.NewSession(intPtr(3), intPtr(3), false)
	require.NoError(t, err)

	require.NoError(t, gsm.End(snap.ID))
	_, err = gsm.Snapshot(snap.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, gsm.End(snap.ID), ErrSessionNotFound)
}

func TestReap(t *testing.T) {
	gsm, log := newManager(t)
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gsm.now = func() time.Time { return clock }

	idle, err := gsm.NewSession(intPtr(3), intPtr(3), false)
	require.NoError(t, err)
	active, err := gsm.NewSession(intPtr(3), intPtr(3), false)
	require.NoError(t, err)

	clock = clock.Add(45 * time.Minute)
	_, err = gsm.Snapshot(active.ID)
	require.NoError(t, err)

	clock = clock.Add(30 * time.Minute)
	gsm.reap()

	_, err = gsm.Snapshot(idle.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	_, err = gsm.Snapshot(active.ID)
	assert.NoError(t, err)
	assert.True(t, log.contains("reaped idle game "+idle.ID.String()))
}

func TestConcurrentSessions(t *testing.T) {
	gsm, _ := newManager(t)

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := gsm.NewSession(intPtr(8), intPtr(8), false)
			if !assert.NoError(t, err) {
				return
			}
			_, after, err := gsm.Solve(snap.ID)
			assert.NoError(t, err)
			assert.True(t, after.Won)
		}()
	}
	wg.Wait()
}
