package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bezkit.yaml")
	test.Error(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	test.Error(t, err)
	test.T(t, cfg, Defaults())
	test.T(t, cfg.Logging.SlogLevel(), slog.LevelInfo)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tolerance: 0.1
logging:
  level: DEBUG
  format: json
  file: " /tmp/bezkit.log "
`)
	cfg, err := Load(path)
	test.Error(t, err)
	test.Float(t, cfg.Tolerance, 0.1)
	// Keys missing from the file keep their defaults.
	test.Float(t, cfg.Accuracy, Defaults().Accuracy)
	test.T(t, cfg.Logging.SlogLevel(), slog.LevelDebug)
	test.T(t, cfg.Logging.Format, "json")
	test.T(t, cfg.Logging.File, "/tmp/bezkit.log")
	test.T(t, cfg.Logging.MaxSizeMB, 10)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	test.Error(t, err)
	test.T(t, cfg, Defaults())
}

func TestLoadErrors(t *testing.T) {
	var tts = []struct {
		name string
		data string
		err  string
	}{
		{"unknown key", "tolerence: 1\n", "field tolerence not found"},
		{"bad tolerance", "tolerance: 0\n", "tolerance must be positive"},
		{"bad accuracy", "accuracy: -1\n", "accuracy must be positive"},
		{"bad precision", "precision: -2\n", "precision must not be negative"},
		{"bad format", "logging:\n  format: xml\n", `unknown log format "xml"`},
		{"bad level", "logging:\n  level: loud\n", "loud"},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			test.That(t, err != nil && strings.Contains(err.Error(), tt.err), "unexpected error", err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.That(t, errors.Is(err, fs.ErrNotExist), err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTolerance, "0.5")
	t.Setenv(EnvAccuracy, "1e-6")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogFile, "bezkit.log")

	cfg, err := Load(writeConfig(t, "tolerance: 0.1\n"))
	test.Error(t, err)
	test.Float(t, cfg.Tolerance, 0.5)
	test.Float(t, cfg.Accuracy, 1e-6)
	test.T(t, cfg.Logging.SlogLevel(), slog.LevelWarn)
	test.T(t, cfg.Logging.Format, "json")
	test.T(t, cfg.Logging.File, "bezkit.log")
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv(EnvTolerance, "fine")
	_, err := Load("")
	test.That(t, err != nil && strings.Contains(err.Error(), EnvTolerance), err)
}
