// Package config reads game settings from the environment and an optional .env file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalid marks a setting that could not be parsed or is out of range
var ErrInvalid = errors.New("invalid config")

// Environment keys
const (
	EnvHeight   = "TROLLMAZE_HEIGHT"
	EnvWidth    = "TROLLMAZE_WIDTH"
	EnvTrolls   = "TROLLMAZE_TROLLS"
	EnvSeed     = "TROLLMAZE_SEED"
	EnvMazeFile = "TROLLMAZE_MAZE_FILE"
	EnvAudio    = "TROLLMAZE_AUDIO"
	EnvDebug    = "TROLLMAZE_DEBUG"
	EnvLogDir   = "TROLLMAZE_LOG_DIR"
)

// DefaultEnvFile is read when Load is given an empty path
const DefaultEnvFile = ".env"

// Config holds the game settings
type Config struct {
	Height   int    // Maze height in cells
	Width    int    // Maze width in cells
	Trolls   int    // Number of trolls to spawn
	Seed     int64  // Random seed, 0 picks one from the clock
	MazeFile string // Layout file to play instead of a generated maze
	Audio    bool   // Play sound cues
	Debug    bool   // Write the debug log
	LogDir   string // Directory for the debug log
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Height: 10,
		Width:  20,
		Trolls: 4,
		Audio:  true,
		LogDir: "logs",
	}
}

// Load reads envFile if it exists, then overlays environment variables on the defaults
// Variables already set in the process take precedence over the file
// Only parse errors are reported; call Validate once every override is applied
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Default()
	var err error
	if cfg.Height, err = getEnvAsInt(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsInt(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Trolls, err = getEnvAsInt(EnvTrolls, cfg.Trolls); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64(EnvSeed, cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Audio, err = getEnvAsBool(EnvAudio, cfg.Audio); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = getEnvAsBool(EnvDebug, cfg.Debug); err != nil {
		return Config{}, err
	}
	cfg.MazeFile = getEnvWithDefault(EnvMazeFile, cfg.MazeFile)
	cfg.LogDir = getEnvWithDefault(EnvLogDir, cfg.LogDir)

	return cfg, nil
}

// Validate rejects settings the game cannot start with
func (c Config) Validate() error {
	if c.MazeFile == "" && (c.Height < 1 || c.Width < 1) {
		return fmt.Errorf("%w: maze must be at least 1x1 cells, got %dx%d", ErrInvalid, c.Height, c.Width)
	}
	if c.Trolls < 0 {
		return fmt.Errorf("%w: troll count %d is negative", ErrInvalid, c.Trolls)
	}
	if c.Debug && c.LogDir == "" {
		return fmt.Errorf("%w: debug logging needs a log directory", ErrInvalid)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalid, key, valueStr)
	}
	return value, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalid, key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalid, key, valueStr)
	}
	return value, nil
}
