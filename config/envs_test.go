package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		assert.Equal(t, "easy", getEnvWithDefault("MAZE_TEST_UNSET", "easy"))
		assert.Equal(t, 1000, getEnvAsIntWithDefault("MAZE_TEST_UNSET", 1000))
		assert.Equal(t, uint64(0), getEnvAsUintWithDefault("MAZE_TEST_UNSET", 0))
		assert.False(t, getEnvAsBoolWithDefault("MAZE_TEST_UNSET", false))
	})

	t.Run("reads set values", func(t *testing.T) {
		t.Setenv("MAZE_TEST_LEVEL", "hard")
		t.Setenv("MAZE_TEST_TICK", "250")
		t.Setenv("MAZE_TEST_SEED", "18446744073709551615")
		t.Setenv("MAZE_TEST_TIMER", "true")

		assert.Equal(t, "hard", getEnvWithDefault("MAZE_TEST_LEVEL", "easy"))
		assert.Equal(t, 250, getEnvAsIntWithDefault("MAZE_TEST_TICK", 1000))
		assert.Equal(t, uint64(18446744073709551615), getEnvAsUintWithDefault("MAZE_TEST_SEED", 0))
		assert.True(t, getEnvAsBoolWithDefault("MAZE_TEST_TIMER", false))
	})

	t.Run("empty string is a set value", func(t *testing.T) {
		t.Setenv("MAZE_TEST_LEVEL", "")
		assert.Equal(t, "", getEnvWithDefault("MAZE_TEST_LEVEL", "easy"))
	})
}
