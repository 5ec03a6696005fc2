package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// Status is the state of a Session.
type Status int

const (
	Initializing Status = iota
	Playing
	Won
	TimedOut
)

func (s Status) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case TimedOut:
		return "timed-out"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether gameplay has ended in s.
func (s Status) Terminal() bool {
	return s == Won || s == TimedOut
}

// Session is one maze-solving attempt. A Session is never reset in place: every
// regeneration builds a new one.
type Session struct {
	ID           uuid.UUID         // identity that countdown ticks are bound to
	Preset       difficulty.Preset // preset the maze was generated from
	Maze         *maze.Maze
	Position     maze.Position
	Moves        int
	Remaining    int // countdown seconds, only meaningful when TimerEnabled
	Status       Status
	TimerEnabled bool

	par int
}

// NewSession validates the preset, generates a maze and places the player at
// its start. The returned session is already Playing.
func NewSession(p difficulty.Preset, timerEnabled bool, rng *rand.Rand) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, err := maze.New(p.Rows, p.Cols, rng)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:           uuid.New(),
		Preset:       p,
		Maze:         m,
		Status:       Initializing,
		TimerEnabled: timerEnabled,
	}
	s.begin()
	return s, nil
}

// begin performs the Initializing -> Playing transition.
func (s *Session) begin() {
	s.Position = s.Maze.Start()
	s.Moves = 0
	s.Remaining = 0
	if s.TimerEnabled {
		s.Remaining = s.Preset.TimeLimit
	}
	s.par = len(maze.ShortestPath(s.Maze, s.Maze.Start(), s.Maze.Goal())) - 1
	s.Status = Playing
}

// Move applies a directional intent and reports whether it was accepted.
// Rejected moves and moves outside Playing change nothing.
func (s *Session) Move(d maze.Direction) bool {
	if s.Status != Playing {
		return false
	}

	to, ok := maze.TryMove(s.Maze, s.Position, d)
	if !ok {
		return false
	}

	s.Position = to
	s.Moves++
	if s.Maze.CellAt(to).IsGoal {
		s.Status = Won
	}
	return true
}

// Tick advances the countdown by one second and reports whether it applied.
// The tick that brings Remaining to zero also moves the session to TimedOut.
func (s *Session) Tick() bool {
	if !s.countdownActive() {
		return false
	}

	s.Remaining--
	if s.Remaining == 0 {
		s.Status = TimedOut
	}
	return true
}

func (s *Session) countdownActive() bool {
	return s.TimerEnabled && s.Status == Playing && s.Remaining > 0
}

// Snapshot is a read-only view of a session for the presentation layer.
type Snapshot struct {
	SessionID    uuid.UUID
	Level        difficulty.Level
	Preset       difficulty.Preset
	Maze         *maze.Maze
	Position     maze.Position
	Moves        int
	Remaining    int
	Status       Status
	TimerEnabled bool
	Par          int // length of the start-to-goal path
}

// Snapshot copies the observable state. The maze is cloned so callers cannot
// mutate the session through it.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:    s.ID,
		Level:        s.Preset.Level,
		Preset:       s.Preset,
		Maze:         s.Maze.Clone(),
		Position:     s.Position,
		Moves:        s.Moves,
		Remaining:    s.Remaining,
		Status:       s.Status,
		TimerEnabled: s.TimerEnabled,
		Par:          s.par,
	}
}

// Outcome returns the end-of-game message, or "" while the game is running.
func (s Snapshot) Outcome() string {
	switch s.Status {
	case Won:
		return fmt.Sprintf("Yummy! You found it in %d moves!", s.Moves)
	case TimedOut:
		return "Time's up! Try again?"
	}
	return ""
}
