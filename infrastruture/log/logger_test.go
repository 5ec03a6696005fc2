package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects empty prefix", func(t *testing.T) {
		l, err := New("  ", "", &bytes.Buffer{})
		assert.Nil(t, l)
		assert.Error(t, err)
	})

	t.Run("rejects nil writer", func(t *testing.T) {
		l, err := New("APP", "", nil)
		assert.Nil(t, l)
		assert.Error(t, err)
	})
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*Logger, string)
		level string
	}{
		{name: "info", log: (*Logger).Info, level: "[INFO]"},
		{name: "warning", log: (*Logger).Warning, level: "[WARNING]"},
		{name: "error", log: (*Logger).Error, level: "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New("ENGINE", "", &buf)
			require.NoError(t, err)

			tt.log(l, "maze regenerated")

			line := buf.String()
			assert.True(t, strings.HasSuffix(line, "[ENGINE] "+tt.level+" maze regenerated\n"), line)
		})
	}
}

func TestLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "\033[36m", &buf)
	require.NoError(t, err)

	l.Info("ready")
	assert.Contains(t, buf.String(), "\033[36m[APP]\033[0m [INFO] ready")
}
