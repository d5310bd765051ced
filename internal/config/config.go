// Package config loads dynprog's runtime settings from the environment,
// optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr  = ":8080"
	defaultMaxCapacity = 1_000_000
	defaultMaxSequence = 10_000
	defaultMaxCells    = 10_000_000

	envListenAddr  = "DYNPROG_LISTEN_ADDR"
	envLogLevel    = "DYNPROG_LOG_LEVEL"
	envMaxCapacity = "DYNPROG_MAX_CAPACITY"
	envMaxSequence = "DYNPROG_MAX_SEQUENCE"
	envMaxCells    = "DYNPROG_MAX_CELLS"

	defaultEnvFile = ".env"
)

// ErrInvalidValue indicates a malformed environment value.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds settings for the command-line and HTTP surfaces. The
// algorithm packages take no configuration.
type Config struct {
	ListenAddr string
	LogLevel   slog.Level
	// MaxCapacity bounds the knapsack capacity accepted over HTTP; the
	// lookup table is O(capacity).
	MaxCapacity int
	// MaxSequence bounds the rune length of each LCS/LPS input over HTTP;
	// the tables are quadratic in it.
	MaxSequence int
	// MaxCells bounds the number of cells of any full DP table built for
	// an HTTP request: (items+1)*(capacity+1) for knapsack selection,
	// (len(a)+1)*(len(b)+1) for LCS and n*n for LPS.
	MaxCells int
}

// Load reads configuration from environment variables with defaults.
//
// The listed env files (".env" when none are given) are loaded first with
// godotenv; missing files are skipped and variables already present in
// the process environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		ListenAddr:  defaultListenAddr,
		LogLevel:    slog.LevelInfo,
		MaxCapacity: defaultMaxCapacity,
		MaxSequence: defaultMaxSequence,
		MaxCells:    defaultMaxCells,
	}

	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	var err error
	if v := os.Getenv(envLogLevel); v != "" {
		if cfg.LogLevel, err = parseLogLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", envLogLevel, v, err)
		}
	}
	if cfg.MaxCapacity, err = positiveInt(envMaxCapacity, cfg.MaxCapacity); err != nil {
		return Config{}, err
	}
	if cfg.MaxSequence, err = positiveInt(envMaxSequence, cfg.MaxSequence); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = positiveInt(envMaxCells, cfg.MaxCells); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// positiveInt reads key as an integer > 0, returning def when unset.
func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(v, "_", ""))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}

	return n, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, ErrInvalidValue
	}
}
