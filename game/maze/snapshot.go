package maze

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a portable description of a maze. Each row of Board lists its
// cells separated by spaces. A cell is written as the letters of its present
// walls (t, r, b, l) or "-" when it has none, optionally followed by ":s" for
// the start cell or ":g" for the goal cell.
type Snapshot struct {
	Seed  uint64 `yaml:"seed"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Board string `yaml:"board"`
}

// NewSnapshot describes m. seed is recorded for reference only.
func NewSnapshot(m *Maze, seed uint64) *Snapshot {
	rows := make([]string, 0, m.Rows)
	for r := range m.Grid {
		tokens := make([]string, 0, m.Cols)
		for c := range m.Grid[r] {
			tokens = append(tokens, encodeCell(m.Grid[r][c]))
		}
		rows = append(rows, strings.Join(tokens, " "))
	}

	return &Snapshot{
		Seed:  seed,
		Rows:  m.Rows,
		Cols:  m.Cols,
		Board: strings.Join(rows, "\n"),
	}
}

// Serialize renders the snapshot as YAML.
func (s *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Maze rebuilds the described maze and validates it.
func (s *Snapshot) Maze() (*Maze, error) {
	if err := CheckDimensions(s.Rows, s.Cols); err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(s.Board), "\n")
	if len(lines) != s.Rows {
		return nil, fmt.Errorf("%w: board has %d rows, expected %d", ErrCorruptMaze, len(lines), s.Rows)
	}

	m := blank(s.Rows, s.Cols)
	for r, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) != s.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrCorruptMaze, r, len(tokens), s.Cols)
		}
		for c, token := range tokens {
			cell, err := decodeCell(token)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			m.Grid[r][c] = cell
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadSnapshot parses a YAML snapshot.
func LoadSnapshot(in []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(in, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func encodeCell(cell Cell) string {
	var token strings.Builder
	if cell.WallTop {
		token.WriteByte('t')
	}
	if cell.WallRight {
		token.WriteByte('r')
	}
	if cell.WallBottom {
		token.WriteByte('b')
	}
	if cell.WallLeft {
		token.WriteByte('l')
	}
	if token.Len() == 0 {
		token.WriteByte('-')
	}

	switch {
	case cell.IsStart:
		token.WriteString(":s")
	case cell.IsGoal:
		token.WriteString(":g")
	}
	return token.String()
}

func decodeCell(token string) (Cell, error) {
	walls, flag, _ := strings.Cut(token, ":")

	var cell Cell
	if walls != "-" {
		for _, ch := range walls {
			switch ch {
			case 't':
				cell.WallTop = true
			case 'r':
				cell.WallRight = true
			case 'b':
				cell.WallBottom = true
			case 'l':
				cell.WallLeft = true
			default:
				return Cell{}, fmt.Errorf("%w: unknown wall %q in %q", ErrCorruptMaze, ch, token)
			}
		}
	}

	switch flag {
	case "":
	case "s":
		cell.IsStart = true
	case "g":
		cell.IsGoal = true
	default:
		return Cell{}, fmt.Errorf("%w: unknown flag %q in %q", ErrCorruptMaze, flag, token)
	}
	return cell, nil
}
