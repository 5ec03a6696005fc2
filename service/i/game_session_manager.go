package i

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// GameSessionManager hosts independent single-player maze games, one per
// mounted game, addressed by the id returned from NewSession.
type GameSessionManager interface {
	// NewSession mounts a game and returns its id and initial snapshot.
	NewSession(level difficulty.Level, timerEnabled bool) (uuid.UUID, game.Snapshot, error)
	SelectDifficulty(id uuid.UUID, level difficulty.Level) (game.Snapshot, error)
	RequestNewMaze(id uuid.UUID) (game.Snapshot, error)
	SetTimerMode(id uuid.UUID, enabled bool) (game.Snapshot, error)
	Move(id uuid.UUID, d maze.Direction) (game.Snapshot, error)
	Snapshot(id uuid.UUID) (game.Snapshot, error)
	// EndSession is the give-up signal: the game is torn down and forgotten.
	EndSession(id uuid.UUID) error
	StopAll()
}
