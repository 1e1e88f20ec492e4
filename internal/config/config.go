package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present; its absence is not an error.
const DefaultEnvFile = ".env"

const (
	EnvPollInterval = "MAZE_POLL_INTERVAL"
	EnvGoal         = "MAZE_GOAL"
	EnvLogFile      = "MAZE_LOG_FILE"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the game settings.
type Config struct {
	PollInterval time.Duration // Bounded wait for one key event
	Goal         bool          // Place a goal and enable the win condition
	LogFile      string        // Log destination; empty discards logs
	LogLevel     string        // logrus level name
}

func Default() Config {
	return Config{
		PollInterval: 17 * time.Millisecond,
		Goal:         true,
		LogLevel:     "info",
	}
}

// Load reads envFile into the process environment (without overriding
// variables already set) and then builds a Config from MAZE_* variables.
// A missing DefaultEnvFile is ignored; any other missing file is an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !(envFile == DefaultEnvFile && errors.Is(err, fs.ErrNotExist)) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvPollInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvPollInterval, v, err)
		}
		cfg.PollInterval = d
	}
	if v, ok := lookup(EnvGoal); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvGoal, v, err)
		}
		cfg.Goal = b
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive, got %s", ErrInvalidValue, c.PollInterval)
	}
	return nil
}
