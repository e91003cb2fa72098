// Package config loads mockify's optional settings file and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Exported constants.
const (
	// DefaultFileName is looked up in the working directory when MOCKIFY_CONFIG is unset.
	DefaultFileName = "mockify.toml"
	// DefaultFormatter is the source formatter run over the generated file when it is on PATH.
	DefaultFormatter = "clang-format"
	// EnvConfig names an explicit config file.
	EnvConfig = "MOCKIFY_CONFIG"
	// EnvFormatter overrides the formatter executable; an empty value keeps the file setting.
	EnvFormatter = "MOCKIFY_FORMATTER"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "MOCKIFY_LOG_LEVEL"
	// EnvSourceDateEpoch pins the copyright year for reproducible output.
	EnvSourceDateEpoch = "SOURCE_DATE_EPOCH"
)

// Config holds the settings that shape a run. None of them change what gets generated, only
// how the generated file is post-processed and how much the tool logs.
type Config struct {
	Formatter     string   `toml:"formatter"`
	FormatterArgs []string `toml:"formatter_args"`
	LogLevel      string   `toml:"log_level"`
}

// Reader reads a config file. fs.ErrNotExist (possibly wrapped) means "no file".
type Reader interface {
	ReadFile(name string) ([]byte, error)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Formatter:     DefaultFormatter,
		FormatterArgs: []string{"-i"},
		LogLevel:      "warn",
	}
}

// Load reads the config file (if any) and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load(reader Reader, getEnv func(string) string) (Config, error) {
	cfg := Default()

	path := getEnv(EnvConfig)
	explicit := path != ""

	if !explicit {
		path = DefaultFileName
	}

	data, err := reader.ReadFile(path)

	switch {
	case err == nil:
		_, err = toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if formatter, ok := lookupEnv(getEnv, EnvFormatter); ok {
		cfg.Formatter = formatter
	}

	if level, ok := lookupEnv(getEnv, EnvLogLevel); ok {
		cfg.LogLevel = level
	}

	_, err = ParseLevel(cfg.LogLevel)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseLevel converts a log_level setting to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownLevel, level)
	}
}

// Year returns the copyright year: SOURCE_DATE_EPOCH when set and valid, otherwise now's year.
func Year(getEnv func(string) string, now func() time.Time) int {
	epoch := getEnv(EnvSourceDateEpoch)
	if epoch != "" {
		secs, err := strconv.ParseInt(epoch, 10, 64)
		if err == nil {
			return time.Unix(secs, 0).UTC().Year()
		}
	}

	return now().Year()
}

// unexported variables.
var (
	errUnknownLevel = errors.New("unknown log level")
)

// unexported functions.

// lookupEnv treats an unset variable and an empty one the same, since getEnv cannot tell them apart.
func lookupEnv(getEnv func(string) string, key string) (string, bool) {
	value := getEnv(key)

	return value, value != ""
}
