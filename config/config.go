package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"grid-snake/game/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backends selectable with the backend setting.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config holds the game configuration.
type Config struct {
	Width         int           // Surface width in pixels
	Height        int           // Surface height in pixels
	Cells         int           // Grid cells per axis
	TickInterval  time.Duration // Time between snake moves
	SpawnInterval time.Duration // Time between food spawn attempts
	Backend       string        // "window" (raylib) or "terminal" (tcell)
	Autopilot     bool          // Let the Q-learning agent steer
	LogFile       string        // Log destination, empty for stderr
}

// Default returns the configuration of the classic 300x300, 15 cell game.
func Default() Config {
	return Config{
		Width:         types.DefaultWidth,
		Height:        types.DefaultHeight,
		Cells:         types.DefaultCells,
		TickInterval:  types.DefaultTickInterval,
		SpawnInterval: types.DefaultSpawnInterval,
		Backend:       BackendWindow,
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then the environment. A .env file in the
// working directory is loaded first if present.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] [INFO] .env file could not be loaded: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg. Durations are written
// as Go duration strings ("100ms") or plain millisecond integers.
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file struct {
		Width         *int    `yaml:"width"`
		Height        *int    `yaml:"height"`
		Cells         *int    `yaml:"cells"`
		TickInterval  *string `yaml:"tickInterval"`
		SpawnInterval *string `yaml:"spawnInterval"`
		Backend       *string `yaml:"backend"`
		Autopilot     *bool   `yaml:"autopilot"`
		LogFile       *string `yaml:"logFile"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if file.Width != nil {
		cfg.Width = *file.Width
	}
	if file.Height != nil {
		cfg.Height = *file.Height
	}
	if file.Cells != nil {
		cfg.Cells = *file.Cells
	}
	if file.TickInterval != nil {
		if cfg.TickInterval, err = parseInterval(*file.TickInterval); err != nil {
			return fmt.Errorf("tickInterval: %w", err)
		}
	}
	if file.SpawnInterval != nil {
		if cfg.SpawnInterval, err = parseInterval(*file.SpawnInterval); err != nil {
			return fmt.Errorf("spawnInterval: %w", err)
		}
	}
	if file.Backend != nil {
		cfg.Backend = *file.Backend
	}
	if file.Autopilot != nil {
		cfg.Autopilot = *file.Autopilot
	}
	if file.LogFile != nil {
		cfg.LogFile = *file.LogFile
	}
	return nil
}

// ApplyEnv overlays SNAKE_* environment variables onto cfg.
func (cfg *Config) ApplyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_WIDTH", &cfg.Width},
		{"SNAKE_HEIGHT", &cfg.Height},
		{"SNAKE_CELLS", &cfg.Cells},
	}
	for _, e := range ints {
		if err := getEnvAsInt(e.key, e.dst); err != nil {
			return err
		}
	}

	intervals := []struct {
		key string
		dst *time.Duration
	}{
		{"SNAKE_TICK_MS", &cfg.TickInterval},
		{"SNAKE_SPAWN_MS", &cfg.SpawnInterval},
	}
	for _, e := range intervals {
		if _, exists := os.LookupEnv(e.key); !exists {
			continue
		}
		var ms int
		if err := getEnvAsInt(e.key, &ms); err != nil {
			return err
		}
		*e.dst = time.Duration(ms) * time.Millisecond
	}

	cfg.Backend = getEnvWithDefault("SNAKE_BACKEND", cfg.Backend)
	cfg.LogFile = getEnvWithDefault("SNAKE_LOG_FILE", cfg.LogFile)
	if value, exists := os.LookupEnv("SNAKE_AUTOPILOT"); exists {
		autopilot, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("environment variable SNAKE_AUTOPILOT must be a boolean: %w", err)
		}
		cfg.Autopilot = autopilot
	}
	return nil
}

// Validate rejects settings the game cannot run with. Cell size divisibility
// is deliberately not checked.
func (cfg Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("surface must be positive, got %dx%d", cfg.Width, cfg.Height)
	case cfg.Cells <= 0:
		return fmt.Errorf("cells must be positive, got %d", cfg.Cells)
	case cfg.Cells > cfg.Width || cfg.Cells > cfg.Height:
		return fmt.Errorf("%d cells do not fit a %dx%d surface", cfg.Cells, cfg.Width, cfg.Height)
	case cfg.TickInterval <= 0 || cfg.SpawnInterval <= 0:
		return fmt.Errorf("intervals must be positive, got tick %v spawn %v", cfg.TickInterval, cfg.SpawnInterval)
	case cfg.Backend != BackendWindow && cfg.Backend != BackendTerminal:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	return nil
}

func parseInterval(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

// getEnvAsInt sets *dst from an integer environment variable when it is set.
func getEnvAsInt(key string, dst *int) error {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = value
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
