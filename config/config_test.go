package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, 15, cfg.Cells)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, time.Second, cfg.SpawnInterval)
	assert.Equal(t, BackendWindow, cfg.Backend)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides given fields only", func(t *testing.T) {
		path := writeConfig(t, `width: 400
cells: 20
tickInterval: 150ms
spawnInterval: 2000
backend: terminal
autopilot: true
`)
		cfg := Default()
		require.NoError(t, cfg.LoadFile(path))
		assert.Equal(t, 400, cfg.Width)
		assert.Equal(t, 300, cfg.Height)
		assert.Equal(t, 20, cfg.Cells)
		assert.Equal(t, 150*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 2*time.Second, cfg.SpawnInterval)
		assert.Equal(t, BackendTerminal, cfg.Backend)
		assert.True(t, cfg.Autopilot)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := Default()
		assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")))
	})

	t.Run("bad yaml", func(t *testing.T) {
		cfg := Default()
		assert.Error(t, cfg.LoadFile(writeConfig(t, "width: [1, 2")))
	})

	t.Run("bad interval", func(t *testing.T) {
		cfg := Default()
		assert.Error(t, cfg.LoadFile(writeConfig(t, "tickInterval: soon\n")))
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SNAKE_WIDTH", "600")
	t.Setenv("SNAKE_TICK_MS", "50")
	t.Setenv("SNAKE_BACKEND", BackendTerminal)
	t.Setenv("SNAKE_AUTOPILOT", "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, time.Second, cfg.SpawnInterval)
	assert.Equal(t, BackendTerminal, cfg.Backend)
	assert.True(t, cfg.Autopilot)
}

func TestApplyEnvErrors(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("SNAKE_CELLS", "many")
		cfg := Default()
		assert.Error(t, cfg.ApplyEnv())
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("SNAKE_AUTOPILOT", "perhaps")
		cfg := Default()
		assert.Error(t, cfg.ApplyEnv())
	})
}

func TestApplyEnvZeroInterval(t *testing.T) {
	t.Setenv("SNAKE_TICK_MS", "0")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, time.Duration(0), cfg.TickInterval)
	assert.Equal(t, time.Second, cfg.SpawnInterval)
	assert.Error(t, cfg.Validate())
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "width: 400\nheight: 400\n")
	t.Setenv("SNAKE_HEIGHT", "500")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Width = 0 },
		"negative cells": func(c *Config) { c.Cells = -1 },
		"too many cells": func(c *Config) { c.Cells = 301 },
		"zero tick":      func(c *Config) { c.TickInterval = 0 },
		"zero spawn":     func(c *Config) { c.SpawnInterval = 0 },
		"backend":        func(c *Config) { c.Backend = "canvas" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Width = 310 // not divisible by 15, still accepted
	assert.NoError(t, cfg.Validate())
}
