package maze

import "fmt"

// Direction is one of the four directions a player can step in.
type Direction int

// Supported directions, clockwise from Up.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var (
	// Directions lists every direction in a fixed order. Generation enumerates
	// neighbors in this order so a seeded generator is reproducible.
	Directions = []Direction{Up, Right, Down, Left}

	deltas = map[Direction]Position{
		Up:    {Row: -1, Col: 0},
		Right: {Row: 0, Col: 1},
		Down:  {Row: 1, Col: 0},
		Left:  {Row: 0, Col: -1},
	}

	directionNames = map[string]Direction{
		"up": Up, "u": Up, "north": Up,
		"right": Right, "r": Right, "east": Right,
		"down": Down, "d": Down, "south": Down,
		"left": Left, "l": Left, "west": Left,
	}
)

// ParseDirection converts a textual direction such as "up" or "l" to a Direction.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionNames[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Opposite returns the direction facing back toward the origin.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	}
	return d
}

func (d Direction) valid() bool {
	_, ok := deltas[d]
	return ok
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Cell represents a single cell in a maze grid.
// A wall flag set to true blocks movement across that side.
type Cell struct {
	WallTop    bool // WallTop blocks movement up.
	WallRight  bool // WallRight blocks movement right.
	WallBottom bool // WallBottom blocks movement down.
	WallLeft   bool // WallLeft blocks movement left.
	IsStart    bool // IsStart marks the single start cell.
	IsGoal     bool // IsGoal marks the single goal cell.
}

// HasWall reports whether the cell is walled on the side facing d.
// Unknown directions are treated as walled.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case Up:
		return c.WallTop
	case Right:
		return c.WallRight
	case Down:
		return c.WallBottom
	case Left:
		return c.WallLeft
	}
	return true
}

func (c *Cell) setWall(d Direction, hasWall bool) {
	switch d {
	case Up:
		c.WallTop = hasWall
	case Right:
		c.WallRight = hasWall
	case Down:
		c.WallBottom = hasWall
	case Left:
		c.WallLeft = hasWall
	}
}

func closedCell() Cell {
	return Cell{WallTop: true, WallRight: true, WallBottom: true, WallLeft: true}
}

// Position is the row/column address of a cell.
type Position struct {
	Row int
	Col int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	delta := deltas[d]
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
