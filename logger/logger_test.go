package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects nil writer and empty prefix", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)

		_, err = New("  ", config.ColorGreen, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("writes tagged levelled lines", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf)
		require.NoError(t, err)

		l.Info("maze generated")
		l.Warn("slow step")
		l.Error("solver exhausted")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "INF")
		assert.Contains(t, lines[0], "[APP] maze generated")
		assert.Contains(t, lines[1], "WRN")
		assert.Contains(t, lines[2], "ERR")
		assert.Contains(t, lines[2], "[APP] solver exhausted")
	})

	t.Run("colors the prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("HTTP", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Debug("request")
		assert.Contains(t, buf.String(), config.ColorCyan+"[HTTP]"+config.ColorReset+" request")
	})

	t.Run("nop discards", func(t *testing.T) {
		assert.NotPanics(t, func() { Nop().Error("ignored") })
	})
}
