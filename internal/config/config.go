// Package config handles resolving configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Log levels accepted by [Config.LogLevel].
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Config is the yell configuration file.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"oneof=DEBUG INFO WARN ERROR"`
	DevMode  bool   `yaml:"dev_mode"`
	// Format is the default output format of the render command.
	Format   string `yaml:"format" validate:"oneof=html markdown"`
	Sanitize bool   `yaml:"sanitize"`
	// Locale is a BCP 47 tag selecting case mapping rules. "und" is locale
	// independent.
	Locale  string `yaml:"locale" validate:"required"`
	Workers int    `yaml:"workers" validate:"gte=1,lte=64"`
}

// DefaultPath is the configuration file location used when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "yell.yaml")
}

// Default returns a version of the config with all default values populated.
func Default() *Config {
	return &Config{
		LogLevel: LevelInfo,
		DevMode:  false,
		Format:   "html",
		Sanitize: true,
		Locale:   language.Und.String(),
		Workers:  4, //nolint:mnd // small fan-out for local files
	}
}

// Language returns the parsed [Config.Locale].
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Load loads a YAML configuration file from a path, merges it with defaults, and
// validates it for completeness.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg for completeness.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		_, err = cfg.Language()
	}
	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
