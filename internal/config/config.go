// Package config loads the settings of the bezkit command from a YAML file
// and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	// File enables a rotated JSON log in addition to standard error.
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

type Config struct {
	// Tolerance is the flattening tolerance, in path units.
	Tolerance float64 `yaml:"tolerance"`
	// Accuracy is used for arc length, nearest point and quadratic
	// approximation.
	Accuracy float64 `yaml:"accuracy"`
	// Precision is the number of decimals written to SVG output; 0 writes
	// the shortest exact form.
	Precision int     `yaml:"precision"`
	Logging   Logging `yaml:"logging"`
}

// Defaults returns the settings used when neither a file nor the
// environment says otherwise.
func Defaults() Config {
	return Config{
		Tolerance: 0.25,
		Accuracy:  1e-3,
		Precision: 0,
		Logging:   Logging{Level: "info", Format: "text", MaxSizeMB: 10},
	}
}

// Environment variables override the file.
const (
	EnvTolerance = "BEZKIT_TOLERANCE"
	EnvAccuracy  = "BEZKIT_ACCURACY"
	EnvLogLevel  = "BEZKIT_LOG_LEVEL"
	EnvLogFormat = "BEZKIT_LOG_FORMAT"
	EnvLogFile   = "BEZKIT_LOG_FILE"
)

// Load reads the file at path on top of the defaults, then applies the
// environment. An empty path skips the file. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvTolerance)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		cfg.Tolerance = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvAccuracy)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAccuracy, err)
		}
		cfg.Accuracy = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	return nil
}

// Validate reports the first setting that is out of range.
func (cfg Config) Validate() error {
	switch {
	case !(cfg.Tolerance > 0):
		return fmt.Errorf("tolerance must be positive, got %g", cfg.Tolerance)
	case !(cfg.Accuracy > 0):
		return fmt.Errorf("accuracy must be positive, got %g", cfg.Accuracy)
	case cfg.Precision < 0:
		return fmt.Errorf("precision must not be negative, got %d", cfg.Precision)
	case cfg.Logging.Format != "text" && cfg.Logging.Format != "json":
		return fmt.Errorf("unknown log format %q", cfg.Logging.Format)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured level. Call it on a validated Config.
func (l Logging) SlogLevel() slog.Level {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(l.Level))
	return lvl
}
