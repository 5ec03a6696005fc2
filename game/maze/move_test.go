package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor builds a 2x2 maze whose passages are (0,0)-(0,1), (0,1)-(1,1) and (1,1)-(1,0).
func corridor() *Maze {
	m := blank(2, 2)
	m.openWall(Position{0, 0}, Right)
	m.openWall(Position{0, 1}, Down)
	m.openWall(Position{1, 1}, Left)
	m.Grid[0][0].IsStart = true
	m.Grid[1][1].IsGoal = true
	return m
}

func TestTryMove(t *testing.T) {
	m := corridor()
	require.NoError(t, m.Validate())

	t.Run("open right wall allows the move", func(t *testing.T) {
		to, ok := TryMove(m, Position{0, 0}, Right)
		assert.True(t, ok)
		assert.Equal(t, Position{0, 1}, to)
	})

	t.Run("walled bottom side rejects the move", func(t *testing.T) {
		to, ok := TryMove(m, Position{0, 0}, Down)
		assert.False(t, ok)
		assert.Equal(t, Position{0, 0}, to)
	})

	t.Run("moves off the grid are rejected", func(t *testing.T) {
		_, ok := TryMove(m, Position{0, 0}, Up)
		assert.False(t, ok)
		_, ok = TryMove(m, Position{0, 0}, Left)
		assert.False(t, ok)
	})

	t.Run("missing outer wall still cannot leave the grid", func(t *testing.T) {
		broken := corridor()
		broken.Grid[0][1].WallRight = false

		_, ok := TryMove(broken, Position{0, 1}, Right)
		assert.False(t, ok)
	})

	t.Run("out of bounds source and unknown direction are rejected", func(t *testing.T) {
		_, ok := TryMove(m, Position{5, 5}, Left)
		assert.False(t, ok)
		_, ok = TryMove(m, Position{0, 0}, Direction(9))
		assert.False(t, ok)
		_, ok = TryMove(nil, Position{0, 0}, Right)
		assert.False(t, ok)
	})

	t.Run("never lands outside the grid", func(t *testing.T) {
		g, err := New(9, 6, seeded(21))
		require.NoError(t, err)

		for r := -1; r <= g.Rows; r++ {
			for c := -1; c <= g.Cols; c++ {
				for _, d := range Directions {
					to, ok := TryMove(g, Position{r, c}, d)
					if ok {
						assert.True(t, g.InBound(to), "move %s from (%d,%d) escaped to %s", d, r, c, to)
					}
				}
			}
		}
	})
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"up": Up, "r": Right, "south": Down, "left": Left} {
		got, err := ParseDirection(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}
