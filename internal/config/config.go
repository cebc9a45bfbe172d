package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cryptonoise/internal/noise"
)

// FileName is the config file looked up under the home directory.
const FileName = "config.yaml"

var (
	// ErrExists is returned by Save when the file exists and overwrite is off.
	ErrExists = errors.New("config file already exists")
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("invalid config")
)

// Config is the on-disk configuration.
type Config struct {
	Generator noise.Params `yaml:"generator"`
	Workers   int          `yaml:"workers"`
	LogLevel  string       `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator: noise.DefaultParams(),
		Workers:   4,
		LogLevel:  "info",
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("%w: generator: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be at least 1", ErrInvalid, c.Workers)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	if b == nil {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save validates cfg and writes it to path with mode 0600.
func Save(path string, cfg Config, overwrite bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	b, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return writeFile(path, b, 0o600)
}
