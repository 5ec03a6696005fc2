package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

var ErrEngineClosed = errors.New("engine is closed")

const defaultTickPeriod = time.Second

// NewRand returns a seeded PCG generator.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Config holds the settings an Engine starts with.
type Config struct {
	Level        difficulty.Level
	TimerEnabled bool
	Catalog      difficulty.Catalog // nil uses the built-in presets
	Clock        Clock              // nil uses SystemClock
	TickPeriod   time.Duration      // zero means one second
	Rand         *rand.Rand         // nil builds a generator from Seed
	Seed         uint64
}

// Engine owns the current Session and serializes everything that mutates it:
// directional intents, countdown ticks, regenerations and teardown.
type Engine struct {
	catalog    difficulty.Catalog
	clock      Clock
	tickPeriod time.Duration
	rng        *rand.Rand

	level        difficulty.Level
	timerEnabled bool
	session      *Session
	countdown    *Countdown

	onStatusChange func(Snapshot)
	closed         bool
	sync.Mutex
}

// NewEngine creates an engine with a Playing session for c.Level.
// Returns an error if the resolved preset is invalid.
func NewEngine(c Config) (*Engine, error) {
	e := &Engine{
		catalog:    c.Catalog,
		clock:      c.Clock,
		tickPeriod: c.TickPeriod,
		rng:        c.Rand,
	}
	if e.catalog == nil {
		e.catalog = difficulty.DefaultCatalog()
	}
	if e.clock == nil {
		e.clock = SystemClock()
	}
	if e.tickPeriod <= 0 {
		e.tickPeriod = defaultTickPeriod
	}
	if e.rng == nil {
		e.rng = NewRand(c.Seed)
	}

	if err := e.regenerate(c.Level, c.TimerEnabled); err != nil {
		return nil, err
	}
	return e, nil
}

// OnStatusChange registers fn to be called, outside the engine lock, whenever
// the session enters Won or TimedOut.
func (e *Engine) OnStatusChange(fn func(Snapshot)) {
	e.Lock()
	defer e.Unlock()
	e.onStatusChange = fn
}

// SelectDifficulty replaces the session with a fresh one for level l.
func (e *Engine) SelectDifficulty(l difficulty.Level) error {
	e.Lock()
	defer e.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	return e.regenerate(l, e.timerEnabled)
}

// RequestNewMaze replaces the session with a fresh maze at the current level.
func (e *Engine) RequestNewMaze() error {
	e.Lock()
	defer e.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	return e.regenerate(e.level, e.timerEnabled)
}

// SetTimerMode replaces the session with one that has, or lacks, a live
// countdown. Progress on the current maze is forfeited.
func (e *Engine) SetTimerMode(enabled bool) error {
	e.Lock()
	defer e.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	return e.regenerate(e.level, enabled)
}

// Move applies a directional intent and returns the resulting snapshot.
// Illegal moves, moves after the game ended and moves on a closed engine are no-ops.
func (e *Engine) Move(d maze.Direction) Snapshot {
	e.Lock()
	if e.closed {
		defer e.Unlock()
		return e.session.Snapshot()
	}

	before := e.session.Status
	e.session.Move(d)
	changed := e.settle(before)
	snapshot := e.session.Snapshot()
	hook := e.onStatusChange
	e.Unlock()

	if changed && hook != nil {
		hook(snapshot)
	}
	return snapshot
}

// Snapshot returns the observable state of the current session.
func (e *Engine) Snapshot() Snapshot {
	e.Lock()
	defer e.Unlock()
	return e.session.Snapshot()
}

// Close tears the engine down and cancels any outstanding countdown.
// Later calls other than Snapshot are no-ops or return ErrEngineClosed.
func (e *Engine) Close() {
	e.Lock()
	defer e.Unlock()
	e.closed = true
	e.countdown.Stop()
	e.countdown = nil
}

// regenerate builds a new session before touching any state, so a failed
// attempt leaves the current session and its countdown intact.
// Callers must hold the lock.
func (e *Engine) regenerate(l difficulty.Level, timerEnabled bool) error {
	preset := e.catalog.Resolve(l)
	session, err := NewSession(preset, timerEnabled, e.rng)
	if err != nil {
		return fmt.Errorf("generating %s maze: %w", preset.Level, err)
	}

	e.countdown.Stop()
	e.countdown = nil

	e.level = preset.Level
	e.timerEnabled = timerEnabled
	e.session = session
	if session.countdownActive() {
		e.countdown = startCountdown(e.clock, e.tickPeriod, session.ID, e.tick)
	}
	return nil
}

// tick is the countdown callback. Ticks bound to a replaced session, or
// arriving after the game ended or the engine closed, are dropped.
func (e *Engine) tick(token uuid.UUID) {
	e.Lock()
	if e.closed || e.session.ID != token {
		e.Unlock()
		return
	}

	before := e.session.Status
	if !e.session.Tick() {
		e.Unlock()
		return
	}
	changed := e.settle(before)
	snapshot := e.session.Snapshot()
	hook := e.onStatusChange
	e.Unlock()

	if changed && hook != nil {
		hook(snapshot)
	}
}

// settle stops the countdown once the session has left Playing and reports
// whether the status changed. Callers must hold the lock.
func (e *Engine) settle(before Status) bool {
	if !e.session.countdownActive() {
		e.countdown.Stop()
		e.countdown = nil
	}
	return e.session.Status != before
}
