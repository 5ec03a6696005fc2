// Package difficulty holds the fixed catalog of maze presets.
package difficulty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/game/maze"
)

// Level is an ordered difficulty key: Easy < Medium < Hard < Expert.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Expert
)

var ErrUnknownLevel = errors.New("unknown difficulty level")

var levelNames = []string{"easy", "medium", "hard", "expert"}

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{Easy, Medium, Hard, Expert}
}

// ParseLevel converts a name such as "hard" to its Level. Matching ignores case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Level(i), nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) String() string {
	if l < Easy || l > Expert {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// clamp maps any level onto the catalog's range.
func (l Level) clamp() Level {
	return max(Easy, min(l, Expert))
}

// Preset is the immutable configuration selected by a Level.
type Preset struct {
	Level         Level  `yaml:"-"`
	Name          string `yaml:"name"`
	Emoji         string `yaml:"emoji"`
	GoalEmoji     string `yaml:"goal_emoji"`
	Rows          int    `yaml:"rows"`
	Cols          int    `yaml:"cols"`
	CellSize      int    `yaml:"cell_size"`      // rendering scale in pixels
	WallThickness int    `yaml:"wall_thickness"` // wall stroke in pixels
	TimeLimit     int    `yaml:"time_limit"`     // countdown allowance in seconds
}

// Validate rejects presets that cannot produce a maze or a countdown.
func (p Preset) Validate() error {
	if err := maze.CheckDimensions(p.Rows, p.Cols); err != nil {
		return fmt.Errorf("preset %s: %w", p.Level, err)
	}
	if p.TimeLimit <= 0 {
		return fmt.Errorf("preset %s: time limit must be positive, got %d", p.Level, p.TimeLimit)
	}
	return nil
}

var defaults = [...]Preset{
	Easy:   {Level: Easy, Name: "Easy", Emoji: "🌟", GoalEmoji: "🍗", Rows: 7, Cols: 7, CellSize: 56, WallThickness: 3, TimeLimit: 60},
	Medium: {Level: Medium, Name: "Medium", Emoji: "⭐", GoalEmoji: "🍔", Rows: 11, Cols: 11, CellSize: 44, WallThickness: 3, TimeLimit: 90},
	Hard:   {Level: Hard, Name: "Hard", Emoji: "🔥", GoalEmoji: "🍟", Rows: 15, Cols: 15, CellSize: 34, WallThickness: 2, TimeLimit: 120},
	Expert: {Level: Expert, Name: "Expert", Emoji: "💎", GoalEmoji: "🥪", Rows: 21, Cols: 21, CellSize: 24, WallThickness: 2, TimeLimit: 180},
}

// Catalog maps levels to presets. A Catalog is copied before modification, so
// presets handed out are never changed underneath a caller.
type Catalog map[Level]Preset

// DefaultCatalog returns a fresh copy of the built-in presets.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaults))
	for _, p := range defaults {
		c[p.Level] = p
	}
	return c
}

// Resolve returns the preset for l. Resolution is total: levels outside the
// catalog's range are clamped, and a level missing from c falls back to the
// built-in preset.
func (c Catalog) Resolve(l Level) Preset {
	l = l.clamp()
	if p, ok := c[l]; ok {
		p.Level = l
		return p
	}
	return defaults[l]
}

// WithSize returns a copy of c whose preset for l uses the given dimensions.
func (c Catalog) WithSize(l Level, rows, cols int) Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	p := c.Resolve(l)
	p.Rows, p.Cols = rows, cols
	out[p.Level] = p
	return out
}

// Resolve looks l up in the built-in catalog.
func Resolve(l Level) Preset {
	return defaults[l.clamp()]
}
