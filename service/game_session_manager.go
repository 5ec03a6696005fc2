package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

var ErrNoSession = errors.New("no game session")

// GameSessionManager hosts one Engine per mounted game.
type GameSessionManager struct {
	sessions   map[uuid.UUID]*game.Engine
	catalog    difficulty.Catalog
	clock      game.Clock
	tickPeriod time.Duration
	seeds      *rand.Rand
	logger     i.Logger
	sync.RWMutex
}

type Config struct {
	Catalog    difficulty.Catalog // nil uses the built-in presets
	Clock      game.Clock         // nil uses game.SystemClock
	TickPeriod time.Duration
	Seed       uint64 // master seed; each game draws its own generator from it
	Logger     i.Logger
}

func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if c.Catalog != nil {
		for _, l := range difficulty.Levels() {
			if err := c.Catalog.Resolve(l).Validate(); err != nil {
				c.Logger.Warning(fmt.Sprintf("preset %s is unusable: %s", l, err))
			}
		}
	}

	return &GameSessionManager{
		sessions:   make(map[uuid.UUID]*game.Engine),
		catalog:    c.Catalog,
		clock:      c.Clock,
		tickPeriod: c.TickPeriod,
		seeds:      game.NewRand(c.Seed),
		logger:     c.Logger,
	}, nil
}

// NewSession mounts a new game and returns its id with the first snapshot.
func (g *GameSessionManager) NewSession(level difficulty.Level, timerEnabled bool) (uuid.UUID, game.Snapshot, error) {
	g.Lock()
	defer g.Unlock()

	engine, err := game.NewEngine(game.Config{
		Level:        level,
		TimerEnabled: timerEnabled,
		Catalog:      g.catalog,
		Clock:        g.clock,
		TickPeriod:   g.tickPeriod,
		Seed:         g.seeds.Uint64(),
	})
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating %s game: %s", level, err))
		return uuid.Nil, game.Snapshot{}, err
	}

	id := uuid.New()
	for {
		if _, ok := g.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	g.sessions[id] = engine
	engine.OnStatusChange(func(s game.Snapshot) { g.logOutcome(id, s) })

	snapshot := engine.Snapshot()
	g.logger.Info(fmt.Sprintf("started %s game %s (timer: %t, par: %d)", snapshot.Level, id, timerEnabled, snapshot.Par))
	return id, snapshot, nil
}

func (g *GameSessionManager) SelectDifficulty(id uuid.UUID, level difficulty.Level) (game.Snapshot, error) {
	return g.regenerate(id, "difficulty change", func(e *game.Engine) error { return e.SelectDifficulty(level) })
}

// RequestNewMaze is the play-again action.
func (g *GameSessionManager) RequestNewMaze(id uuid.UUID) (game.Snapshot, error) {
	return g.regenerate(id, "new maze", (*game.Engine).RequestNewMaze)
}

func (g *GameSessionManager) SetTimerMode(id uuid.UUID, enabled bool) (game.Snapshot, error) {
	return g.regenerate(id, "timer toggle", func(e *game.Engine) error { return e.SetTimerMode(enabled) })
}

func (g *GameSessionManager) Move(id uuid.UUID, d maze.Direction) (game.Snapshot, error) {
	engine, err := g.engine(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return engine.Move(d), nil
}

func (g *GameSessionManager) Snapshot(id uuid.UUID) (game.Snapshot, error) {
	engine, err := g.engine(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

// EndSession tears the game down, cancelling its countdown, and forgets it.
func (g *GameSessionManager) EndSession(id uuid.UUID) error {
	g.Lock()
	engine, ok := g.sessions[id]
	delete(g.sessions, id)
	g.Unlock()

	if !ok {
		g.logger.Warning(fmt.Sprintf("end requested for unknown game %s", id))
		return ErrNoSession
	}
	engine.Close()
	g.logger.Info(fmt.Sprintf("ended game %s", id))
	return nil
}

// StopAll tears down every hosted game.
func (g *GameSessionManager) StopAll() {
	g.Lock()
	defer g.Unlock()

	for id, engine := range g.sessions {
		engine.Close()
		delete(g.sessions, id)
	}
	g.logger.Info("stopped all games")
}

func (g *GameSessionManager) regenerate(id uuid.UUID, reason string, fn func(*game.Engine) error) (game.Snapshot, error) {
	engine, err := g.engine(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	if err := fn(engine); err != nil {
		g.logger.Error(fmt.Sprintf("%s for game %s: %s", reason, id, err))
		return engine.Snapshot(), err
	}

	snapshot := engine.Snapshot()
	g.logger.Info(fmt.Sprintf("%s for game %s: %s %dx%d", reason, id, snapshot.Level, snapshot.Maze.Rows, snapshot.Maze.Cols))
	return snapshot, nil
}

func (g *GameSessionManager) engine(id uuid.UUID) (*game.Engine, error) {
	g.RLock()
	defer g.RUnlock()
	engine, ok := g.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return engine, nil
}

func (g *GameSessionManager) logOutcome(id uuid.UUID, s game.Snapshot) {
	switch s.Status {
	case game.Won:
		g.logger.Info(fmt.Sprintf("game %s won in %d moves (par %d)", id, s.Moves, s.Par))
	case game.TimedOut:
		g.logger.Info(fmt.Sprintf("game %s timed out after %d moves", id, s.Moves))
	}
}
