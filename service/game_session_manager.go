package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/console"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
)

const (
	defaultMazeHeight = 10
	defaultMazeWidth  = 20
	defaultSessionTTL = 30 * time.Minute
	minReapInterval   = time.Second
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrNilLogger       = errors.New("logger is nil")
)

type session struct {
	game     *game.Game
	lastSeen time.Time
	sync.Mutex
}

// GameSessionManager keeps single-player game sessions in memory, keyed by a
// random ID. Sessions idle for longer than the TTL are discarded.
type GameSessionManager struct {
	sessions      map[uuid.UUID]*session
	mazeFactory   func(int, int) (*maze.Maze, error)
	randFactory   func() *rand.Rand
	defaultHeight int
	defaultWidth  int
	ttl           time.Duration
	now           func() time.Time
	logger        i.Logger
	stop          chan struct{}
	stopOnce      sync.Once
	sync.RWMutex
}

type Config struct {
	MazeFactory   func(int, int) (*maze.Maze, error) // Defaults to maze.New
	RandFactory   func() *rand.Rand                  // Source per session; defaults to a clock-seeded one
	DefaultHeight int
	DefaultWidth  int
	SessionTTL    time.Duration // Idle time before a session is reaped; negative disables reaping
	Logger        i.Logger
}

// NewGameSessionManager creates a manager and, unless disabled, starts the
// background reaper. Call StopAll to release it.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	gsm := &GameSessionManager{
		sessions:      make(map[uuid.UUID]*session),
		mazeFactory:   c.MazeFactory,
		randFactory:   c.RandFactory,
		defaultHeight: c.DefaultHeight,
		defaultWidth:  c.DefaultWidth,
		ttl:           c.SessionTTL,
		now:           time.Now,
		logger:        c.Logger,
		stop:          make(chan struct{}),
	}
	if gsm.mazeFactory == nil {
		gsm.mazeFactory = maze.New
	}
	if gsm.randFactory == nil {
		gsm.randFactory = func() *rand.Rand { return maze.NewRand(0) }
	}
	if gsm.defaultHeight <= 0 {
		gsm.defaultHeight = defaultMazeHeight
	}
	if gsm.defaultWidth <= 0 {
		gsm.defaultWidth = defaultMazeWidth
	}
	if gsm.ttl == 0 {
		gsm.ttl = defaultSessionTTL
	}

	if gsm.ttl > 0 {
		go gsm.reapLoop(reapInterval(gsm.ttl))
	}
	return gsm, nil
}

// NewSession implements i.GameSessionManager.
func (g *GameSessionManager) NewSession(h, w *int, breadcrumbs bool) (i.GameSnapshot, error) {
	height, width := g.defaultHeight, g.defaultWidth
	if h != nil {
		height = *h
	}
	if w != nil {
		width = *w
	}

	m, err := g.mazeFactory(height, width)
	if err != nil {
		g.logger.Warn(fmt.Sprintf("creating maze for a new game: %s", err))
		return i.GameSnapshot{}, err
	}

	gm, err := game.New(m, game.WithRand(g.randFactory()), game.WithBreadcrumbs(breadcrumbs))
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating new game: %s", err))
		return i.GameSnapshot{}, err
	}

	s := &session{game: gm, lastSeen: g.now()}

	g.Lock()
	id := uuid.New()
	for {
		if _, ok := g.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	g.sessions[id] = s
	g.Unlock()

	g.logger.Info(fmt.Sprintf("started new %dx%d game: %s", height, width, id))

	s.Lock()
	defer s.Unlock()
	return snapshot(id, s.game), nil
}

// Snapshot implements i.GameSessionManager.
func (g *GameSessionManager) Snapshot(id uuid.UUID) (i.GameSnapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return i.GameSnapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.lastSeen = g.now()
	return snapshot(id, s.game), nil
}

// Apply implements i.GameSessionManager.
func (g *GameSessionManager) Apply(id uuid.UUID, intent game.Intent) (i.GameSnapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return i.GameSnapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.lastSeen = g.now()

	wasWon := s.game.Won()
	err = s.game.Apply(intent)
	if err != nil && !errors.Is(err, game.ErrNoPassage) {
		g.logger.Error(fmt.Sprintf("applying %s to game %s: %s", intent, id, err))
	}
	if !wasWon && s.game.Won() {
		g.logger.Info(fmt.Sprintf("game %s won at version %d", id, s.game.Version()))
	}
	return snapshot(id, s.game), err
}

// Solve implements i.GameSessionManager.
func (g *GameSessionManager) Solve(id uuid.UUID) ([]solver.Step, i.GameSnapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return nil, i.GameSnapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.lastSeen = g.now()

	steps, err := solver.Record(s.game)
	if err != nil {
		g.logger.Error(fmt.Sprintf("solving game %s: %s", id, err))
		return nil, snapshot(id, s.game), err
	}

	g.logger.Info(fmt.Sprintf("solved game %s in %d steps", id, len(steps)))
	return steps, snapshot(id, s.game), nil
}

// End implements i.GameSessionManager.
func (g *GameSessionManager) End(id uuid.UUID) error {
	g.Lock()
	defer g.Unlock()
	if _, ok := g.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	delete(g.sessions, id)
	g.logger.Info(fmt.Sprintf("ended game %s", id))
	return nil
}

// StopAll discards every session and stops the reaper.
func (g *GameSessionManager) StopAll() {
	g.stopOnce.Do(func() { close(g.stop) })

	g.Lock()
	defer g.Unlock()
	n := len(g.sessions)
	g.sessions = make(map[uuid.UUID]*session)
	g.logger.Info(fmt.Sprintf("stopped %d game sessions", n))
}

func (g *GameSessionManager) session(id uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// reapInterval is half the TTL, never below minReapInterval.
func reapInterval(ttl time.Duration) time.Duration {
	return max(ttl/2, minReapInterval)
}

func (g *GameSessionManager) reapLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			g.reap()
		case <-g.stop:
			return
		}
	}
}

// reap discards sessions idle for longer than the TTL.
func (g *GameSessionManager) reap() {
	deadline := g.now().Add(-g.ttl)

	g.Lock()
	defer g.Unlock()
	for id, s := range g.sessions {
		s.Lock()
		idle := s.lastSeen.Before(deadline)
		s.Unlock()
		if idle {
			delete(g.sessions, id)
			g.logger.Info(fmt.Sprintf("reaped idle game %s", id))
		}
	}
}

func snapshot(id uuid.UUID, gm *game.Game) i.GameSnapshot {
	trail, visible := gm.Breadcrumbs()
	return i.GameSnapshot{
		ID:                 id,
		Height:             gm.Maze().Height(),
		Width:              gm.Maze().Width(),
		Player:             gm.Player(),
		End:                gm.End(),
		Won:                gm.Won(),
		Version:            gm.Version(),
		BreadcrumbsVisible: visible,
		Breadcrumbs:        trail,
		Board:              console.Render(gm),
	}
}
