package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Run("encodes walls and flags", func(t *testing.T) {
		snapshot := NewSnapshot(corridor(), 5)
		assert.Equal(t, "tbl:s tr\ntbl rb:g", snapshot.Board)
	})

	t.Run("serialized snapshot rebuilds the same maze", func(t *testing.T) {
		m, err := New(5, 8, seeded(8))
		require.NoError(t, err)

		out, err := NewSnapshot(m, 8).Serialize()
		require.NoError(t, err)

		loaded, err := LoadSnapshot([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, uint64(8), loaded.Seed)

		rebuilt, err := loaded.Maze()
		require.NoError(t, err)
		assert.Equal(t, m.Grid, rebuilt.Grid)
	})

	t.Run("corrupt boards are rejected", func(t *testing.T) {
		cases := map[string]*Snapshot{
			"unknown wall": {Rows: 2, Cols: 2, Board: "tbl:s tx\ntbl rb:g"},
			"short row":    {Rows: 2, Cols: 2, Board: "tbl:s\ntbl rb:g"},
			"missing row":  {Rows: 2, Cols: 2, Board: "tbl:s tr"},
			"cycle":        {Rows: 2, Cols: 2, Board: "tl:s tr\nbl rb:g"},
			"unknown flag": {Rows: 2, Cols: 2, Board: "tbl:x tr\ntbl rb:g"},
			"too few rows": {Rows: 1, Cols: 2, Board: "tbl:s tr"},
		}
		for name, snapshot := range cases {
			_, err := snapshot.Maze()
			assert.Error(t, err, name)
		}
	})
}
