package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"MAZE_HEIGHT", "MAZE_WIDTH", "MAZE_SEED", "BREADCRUMBS", "MODE",
	"WATCH_DELAY_MS", "HOST_IP", "REST_PORT", "GIN_MODE",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)

	t.Run("defaults", func(t *testing.T) {
		c, err := fromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{
			MazeHeight:   10,
			MazeWidth:    20,
			Mode:         ModePlay,
			WatchDelayMs: 20,
			HostIP:       "0.0.0.0",
			RESTPort:     8080,
			GinMode:      "release",
		}, c)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MAZE_HEIGHT", "51")
		t.Setenv("MAZE_WIDTH", " 7 ")
		t.Setenv("MAZE_SEED", "42")
		t.Setenv("BREADCRUMBS", "true")
		t.Setenv("MODE", "Watch")
		t.Setenv("WATCH_DELAY_MS", "0")
		t.Setenv("REST_PORT", "9090")

		c, err := fromEnv()
		require.NoError(t, err)
		assert.Equal(t, 51, c.MazeHeight)
		assert.Equal(t, 7, c.MazeWidth)
		assert.Equal(t, int64(42), c.MazeSeed)
		assert.True(t, c.Breadcrumbs)
		assert.Equal(t, ModeWatch, c.Mode)
		assert.Zero(t, c.WatchDelayMs)
		assert.Equal(t, 9090, c.RESTPort)
	})

	invalid := []struct {
		name, key, value string
	}{
		{"zero height", "MAZE_HEIGHT", "0"},
		{"negative width", "MAZE_WIDTH", "-4"},
		{"non-integer height", "MAZE_HEIGHT", "ten"},
		{"bad boolean", "BREADCRUMBS", "maybe"},
		{"unknown mode", "MODE", "race"},
		{"negative delay", "WATCH_DELAY_MS", "-1"},
		{"unknown gin mode", "GIN_MODE", "verbose"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := fromEnv()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.key[:4])
		})
	}
}
