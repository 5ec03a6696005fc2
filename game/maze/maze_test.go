package maze

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
}

func TestNew(t *testing.T) {
	t.Run("2x2 maze carves exactly three of four edges", func(t *testing.T) {
		for seed := uint64(0); seed < 32; seed++ {
			m, err := New(2, 2, seeded(seed))
			require.NoError(t, err)

			assert.Equal(t, 3, m.Passages())
			assert.Equal(t, 4, Reachable(m, Position{0, 0}))
			assert.Equal(t, Position{0, 0}, m.Start())
			assert.Equal(t, Position{1, 1}, m.Goal())
		}
	})

	t.Run("spanning tree for many sizes", func(t *testing.T) {
		sizes := [][2]int{{2, 2}, {2, 9}, {9, 2}, {3, 3}, {7, 7}, {8, 13}, {21, 21}, {64, 64}}
		for i, size := range sizes {
			rows, cols := size[0], size[1]
			m, err := New(rows, cols, seeded(uint64(i)+100))
			require.NoError(t, err)

			assert.Equal(t, rows*cols-1, m.Passages(), "passages for %dx%d", rows, cols)
			assert.Equal(t, rows*cols, Reachable(m, m.Start()), "reachable for %dx%d", rows, cols)
			assert.NoError(t, m.Validate())
		}
	})

	t.Run("walls between neighbors agree", func(t *testing.T) {
		m, err := New(12, 17, seeded(7))
		require.NoError(t, err)

		for r := 0; r < m.Rows; r++ {
			for c := 0; c < m.Cols; c++ {
				if c+1 < m.Cols {
					assert.Equal(t, m.Grid[r][c].WallRight, m.Grid[r][c+1].WallLeft)
				}
				if r+1 < m.Rows {
					assert.Equal(t, m.Grid[r][c].WallBottom, m.Grid[r+1][c].WallTop)
				}
			}
		}
	})

	t.Run("outer border stays closed", func(t *testing.T) {
		m, err := New(6, 5, seeded(11))
		require.NoError(t, err)

		for c := 0; c < m.Cols; c++ {
			assert.True(t, m.Grid[0][c].WallTop)
			assert.True(t, m.Grid[m.Rows-1][c].WallBottom)
		}
		for r := 0; r < m.Rows; r++ {
			assert.True(t, m.Grid[r][0].WallLeft)
			assert.True(t, m.Grid[r][m.Cols-1].WallRight)
		}
	})

	t.Run("same seed yields same maze", func(t *testing.T) {
		a, err := New(15, 15, seeded(42))
		require.NoError(t, err)
		b, err := New(15, 15, seeded(42))
		require.NoError(t, err)

		assert.Equal(t, a.Grid, b.Grid)
	})

	t.Run("invalid dimensions are rejected", func(t *testing.T) {
		for _, size := range [][2]int{{1, 5}, {5, 1}, {0, 0}, {-3, 4}, {MaxDimension + 1, 4}} {
			m, err := New(size[0], size[1], seeded(1))
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("nil random source is rejected", func(t *testing.T) {
		_, err := New(3, 3, nil)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("asymmetric wall is reported", func(t *testing.T) {
		m, err := New(4, 4, seeded(3))
		require.NoError(t, err)

		m.Grid[1][1].WallRight = !m.Grid[1][1].WallRight
		assert.ErrorIs(t, m.Validate(), ErrCorruptMaze)
	})

	t.Run("extra passage creates a cycle", func(t *testing.T) {
		m, err := New(4, 4, seeded(3))
		require.NoError(t, err)

		for r := 0; r < m.Rows; r++ {
			for c := 0; c+1 < m.Cols; c++ {
				if m.Grid[r][c].WallRight {
					m.openWall(Position{r, c}, Right)
					assert.ErrorIs(t, m.Validate(), ErrCorruptMaze)
					return
				}
			}
		}
		t.Fatal("expected at least one closed interior wall")
	})

	t.Run("missing goal is reported", func(t *testing.T) {
		m, err := New(3, 3, seeded(5))
		require.NoError(t, err)

		m.Grid[2][2].IsGoal = false
		assert.ErrorIs(t, m.Validate(), ErrCorruptMaze)
	})
}

func TestRender(t *testing.T) {
	m := blank(2, 2)
	m.openWall(Position{0, 0}, Right)
	m.openWall(Position{0, 1}, Down)
	m.openWall(Position{1, 1}, Left)
	m.Grid[0][0].IsStart = true
	m.Grid[1][1].IsGoal = true

	expected := "" +
		"+---+---+\n" +
		"| S     |\n" +
		"+---+   +\n" +
		"|     G |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, m.String())
	assert.Contains(t, m.Render(Position{1, 0}), "| @   G |")
}

func TestClone(t *testing.T) {
	m, err := New(3, 3, seeded(9))
	require.NoError(t, err)

	clone := m.Clone()
	clone.Grid[0][0].WallTop = false
	assert.True(t, m.Grid[0][0].WallTop)
}
