package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-mapgen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mapEnvKeys = []string{"MAP_WIDTH", "MAP_HEIGHT", "MAP_WALL_COUNT", "MAP_SEED", "MAP_NAME", "MAP_LOG_LEVEL"}

// clearEnv unsets the keys for the test and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range mapEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(nil, missing)
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.Width)
		assert.Equal(t, 20, cfg.Height)
		assert.Equal(t, 700, cfg.WallCount)
		assert.Nil(t, cfg.Seed)
		assert.Empty(t, cfg.Name)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.EnvFileLoaded)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAP_WIDTH", "10")
		t.Setenv("MAP_HEIGHT", "5")
		t.Setenv("MAP_WALL_COUNT", "60")
		t.Setenv("MAP_SEED", "-3")
		t.Setenv("MAP_NAME", "Corridors")

		cfg, err := Load(nil, missing)
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Width)
		assert.Equal(t, 5, cfg.Height)
		assert.Equal(t, 60, cfg.WallCount)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, int64(-3), *cfg.Seed)
		assert.Equal(t, "Corridors", cfg.Name)
	})

	t.Run("env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MAP_WIDTH=7\nMAP_HEIGHT=3\nMAP_WALL_COUNT=25\n"), 0o600))

		cfg, err := Load(nil, path)
		require.NoError(t, err)
		assert.True(t, cfg.EnvFileLoaded)
		assert.Equal(t, 7, cfg.Width)
		assert.Equal(t, 3, cfg.Height)
		assert.Equal(t, 25, cfg.WallCount)
	})

	t.Run("flags override environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAP_WIDTH", "10")

		cfg, err := Load([]string{"-width", "2", "-height", "1", "-walls", "6", "-seed", "0", "-quiet"}, missing)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Width)
		assert.Equal(t, 1, cfg.Height)
		assert.Equal(t, 6, cfg.WallCount)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, int64(0), *cfg.Seed)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("bad input", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAP_WIDTH", "wide")
		_, err := Load(nil, missing)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		clearEnv(t)
		t.Setenv("MAP_SEED", "x")
		_, err = Load(nil, missing)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		clearEnv(t)
		_, err = Load([]string{"-bogus"}, missing)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Load([]string{"extra"}, missing)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"boundary only", Config{Width: 2, Height: 1, WallCount: 6}, nil},
		{"full universe", Config{Width: 2, Height: 1, WallCount: 7}, nil},
		{"below boundary", Config{Width: 2, Height: 1, WallCount: 5}, maze.ErrWallCountBelowBoundary},
		{"above universe", Config{Width: 2, Height: 1, WallCount: 8}, maze.ErrWallCountExceedsUniverse},
		{"negative", Config{Width: -2, Height: 1, WallCount: 6}, maze.ErrInvalidDimensions},
		{"empty grid", Config{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, maze.ErrConfiguration)
		})
	}
}
