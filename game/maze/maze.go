/*
Package maze provides tools for creating and navigating rectangular mazes.

It defines the `Maze` structure, a grid of `Cell` values that carry a wall flag
for each side. Mazes are generated with a randomized depth-first carver
(recursive backtracker), which always yields a perfect maze: the passages form a
spanning tree of the grid, so exactly one simple path joins any two cells.

The package also contains the move validator, a breadth-first solver, an ASCII
renderer and a YAML snapshot format.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

const (
	// MinDimension is the smallest allowed number of rows or columns.
	MinDimension = 2
	// MaxDimension is the largest allowed number of rows or columns.
	MaxDimension = 64
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrCorruptMaze       = errors.New("maze is not a perfect maze")
)

// Maze represents a rectangular maze consisting of cells with walls.
type Maze struct {
	Rows int      // Rows is the number of rows in the grid.
	Cols int      // Cols is the number of columns in the grid.
	Grid [][]Cell // Grid is indexed as Grid[row][col].
}

// New generates a perfect maze of the given dimensions using rng as its only
// source of randomness. The same seed always produces the same maze.
func New(rows, cols int, rng *rand.Rand) (*Maze, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("maze: nil random source")
	}

	m := blank(rows, cols)
	m.generate(rng)
	return m, nil
}

// CheckDimensions returns ErrInvalidDimensions when rows or cols fall outside
// [MinDimension, MaxDimension].
func CheckDimensions(rows, cols int) error {
	if min(rows, cols) < MinDimension || max(rows, cols) > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be within %d..%d)", ErrInvalidDimensions, rows, cols, MinDimension, MaxDimension)
	}
	return nil
}

// blank returns a grid with every wall present and no start or goal.
func blank(rows, cols int) *Maze {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		for c := range grid[r] {
			grid[r][c] = closedCell()
		}
	}
	return &Maze{Rows: rows, Cols: cols, Grid: grid}
}

// generate carves passages with an explicit-stack depth-first search from (0,0).
func (m *Maze) generate(rng *rand.Rand) {
	start := Position{Row: 0, Col: 0}
	visited := mapset.New[Position]()
	visited.Put(start)
	stack := []Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := make([]Direction, 0, len(Directions))
		for _, d := range Directions {
			next := current.Step(d)
			if m.InBound(next) && !visited.Has(next) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.IntN(len(candidates))]
		next := current.Step(d)
		m.openWall(current, d)
		visited.Put(next)
		stack = append(stack, next)
	}

	m.Grid[0][0].IsStart = true
	m.Grid[m.Rows-1][m.Cols-1].IsGoal = true
}

// openWall removes the wall between pos and its neighbor in direction d on both cells.
func (m *Maze) openWall(pos Position, d Direction) {
	next := pos.Step(d)
	m.Grid[pos.Row][pos.Col].setWall(d, false)
	m.Grid[next.Row][next.Col].setWall(d.Opposite(), false)
}

// InBound reports whether pos lies inside the grid.
func (m *Maze) InBound(pos Position) bool {
	return pos.Row >= 0 && pos.Row < m.Rows && pos.Col >= 0 && pos.Col < m.Cols
}

// CellAt returns the cell at pos, or nil when pos is out of bounds.
func (m *Maze) CellAt(pos Position) *Cell {
	if !m.InBound(pos) {
		return nil
	}
	return &m.Grid[pos.Row][pos.Col]
}

// Start returns the start position, (0,0) for generated mazes.
func (m *Maze) Start() Position {
	return m.find(func(c *Cell) bool { return c.IsStart })
}

// Goal returns the goal position, (rows-1, cols-1) for generated mazes.
func (m *Maze) Goal() Position {
	return m.find(func(c *Cell) bool { return c.IsGoal })
}

func (m *Maze) find(match func(*Cell) bool) Position {
	for r := range m.Grid {
		for c := range m.Grid[r] {
			if match(&m.Grid[r][c]) {
				return Position{Row: r, Col: c}
			}
		}
	}
	return Position{Row: -1, Col: -1}
}

// Passages counts the open sides shared by adjacent cells.
func (m *Maze) Passages() int {
	count := 0
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if c+1 < m.Cols && !m.Grid[r][c].WallRight {
				count++
			}
			if r+1 < m.Rows && !m.Grid[r][c].WallBottom {
				count++
			}
		}
	}
	return count
}

// Validate checks the structural invariants of a perfect maze: symmetric walls,
// a closed outer border, exactly rows*cols-1 passages, full connectivity and a
// single start and goal.
func (m *Maze) Validate() error {
	if err := CheckDimensions(m.Rows, m.Cols); err != nil {
		return err
	}
	if len(m.Grid) != m.Rows {
		return fmt.Errorf("%w: grid has %d rows, expected %d", ErrCorruptMaze, len(m.Grid), m.Rows)
	}

	starts, goals := 0, 0
	for r := 0; r < m.Rows; r++ {
		if len(m.Grid[r]) != m.Cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrCorruptMaze, r, len(m.Grid[r]), m.Cols)
		}
		for c := 0; c < m.Cols; c++ {
			pos := Position{Row: r, Col: c}
			cell := &m.Grid[r][c]
			if cell.IsStart {
				starts++
			}
			if cell.IsGoal {
				goals++
			}
			for _, d := range Directions {
				next := pos.Step(d)
				neighbor := m.CellAt(next)
				if neighbor == nil {
					if !cell.HasWall(d) {
						return fmt.Errorf("%w: cell %s is open to the outside on its %s side", ErrCorruptMaze, pos, d)
					}
					continue
				}
				if cell.HasWall(d) != neighbor.HasWall(d.Opposite()) {
					return fmt.Errorf("%w: walls between %s and %s disagree", ErrCorruptMaze, pos, next)
				}
			}
		}
	}

	if starts != 1 || goals != 1 {
		return fmt.Errorf("%w: found %d start and %d goal cells", ErrCorruptMaze, starts, goals)
	}
	if passages := m.Passages(); passages != m.Rows*m.Cols-1 {
		return fmt.Errorf("%w: %d passages, expected %d", ErrCorruptMaze, passages, m.Rows*m.Cols-1)
	}
	if reached := Reachable(m, m.Start()); reached != m.Rows*m.Cols {
		return fmt.Errorf("%w: only %d of %d cells reachable from start", ErrCorruptMaze, reached, m.Rows*m.Cols)
	}
	return nil
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	grid := make([][]Cell, len(m.Grid))
	for r := range m.Grid {
		grid[r] = append([]Cell(nil), m.Grid[r]...)
	}
	return &Maze{Rows: m.Rows, Cols: m.Cols, Grid: grid}
}

// String provides a textual representation of the maze.
// Start and goal cells are marked with S and G.
func (m *Maze) String() string {
	return m.Render(Position{Row: -1, Col: -1})
}

// Render draws the maze as ASCII with the player marked by @ at player.
func (m *Maze) Render(player Position) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Cols) + "\n")

	for row := 0; row < m.Rows; row++ {
		// Cell rows
		output.WriteString("|")
		for col := 0; col < m.Cols; col++ {
			cell := m.Grid[row][col]
			switch {
			case player.Row == row && player.Col == col:
				output.WriteString(" @ ")
			case cell.IsGoal:
				output.WriteString(" G ")
			case cell.IsStart:
				output.WriteString(" S ")
			default:
				output.WriteString("   ")
			}

			if cell.WallRight {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.Cols; col++ {
			if m.Grid[row][col].WallBottom {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
