// SPDX-License-Identifier: MIT

// Package config resolves service settings from defaults, an optional YAML
// file and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment keys.
const (
	EnvConfigFile     = "ALGOVIZ_CONFIG"
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvDefaultDelayMS = "DEFAULT_DELAY_MS"
	EnvMaxSessions    = "MAX_SESSIONS"
	EnvMaxInputSize   = "MAX_INPUT_SIZE"
	EnvMaxFrames      = "MAX_FRAMES"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the resolved service configuration.
type Config struct {
	Port           string `yaml:"port"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	DefaultDelayMS int    `yaml:"default_delay_ms"`
	MaxSessions    int    `yaml:"max_sessions"`
	MaxInputSize   int    `yaml:"max_input_size"`
	MaxFrames      int    `yaml:"max_frames"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:           "8080",
		LogLevel:       "info",
		LogFormat:      "json",
		DefaultDelayMS: 500,
		MaxSessions:    64,
		MaxInputSize:   256,
		MaxFrames:      8192,
	}
}

// DefaultDelay returns DefaultDelayMS as a Duration.
func (c Config) DefaultDelay() time.Duration {
	return time.Duration(c.DefaultDelayMS) * time.Millisecond
}

// Validate checks numeric settings.
func (c Config) Validate() error {
	switch {
	case c.Port == "":
		return fmt.Errorf("%w: empty port", ErrInvalidConfig)
	case c.DefaultDelayMS < 1:
		return fmt.Errorf("%w: default_delay_ms=%d", ErrInvalidConfig, c.DefaultDelayMS)
	case c.MaxSessions < 1:
		return fmt.Errorf("%w: max_sessions=%d", ErrInvalidConfig, c.MaxSessions)
	case c.MaxInputSize < 1:
		return fmt.Errorf("%w: max_input_size=%d", ErrInvalidConfig, c.MaxInputSize)
	case c.MaxFrames < 1:
		return fmt.Errorf("%w: max_frames=%d", ErrInvalidConfig, c.MaxFrames)
	}

	return nil
}

// Load reads the .env file from the current working directory and sets
// environment variables. If .env does not exist, Load returns an error but
// callers can ignore it and use system env or defaults. Pass one or more
// paths to load from specific files; with no paths, ".env" is used.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	return godotenv.Load(paths...)
}

// Resolve builds a Config from Defaults, the YAML file named by
// ALGOVIZ_CONFIG (if set) and environment overrides. DEFAULT_DELAY_MS takes
// either milliseconds ("750") or a duration ("1.5s").
func Resolve() (Config, error) {
	cfg := Defaults()
	if path := GetEnv(EnvConfigFile, ""); path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.Port = GetEnv(EnvPort, cfg.Port)
	cfg.LogLevel = GetEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = GetEnv(EnvLogFormat, cfg.LogFormat)
	cfg.DefaultDelayMS = int(GetEnvDuration(EnvDefaultDelayMS, cfg.DefaultDelay()).Milliseconds())
	cfg.MaxSessions = GetEnvInt(EnvMaxSessions, cfg.MaxSessions)
	cfg.MaxInputSize = GetEnvInt(EnvMaxInputSize, cfg.MaxInputSize)
	cfg.MaxFrames = GetEnvInt(EnvMaxFrames, cfg.MaxFrames)

	return cfg, cfg.Validate()
}

// LoadFile decodes the YAML file at path over base. Keys absent from the
// file keep base's values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := base
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// GetEnv returns the value of the environment variable named by key, or
// fallback if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}

	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// key, or fallback if the variable is unset, empty, or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}

	return fallback
}

// GetEnvDuration accepts a Go duration ("750ms") or a bare integer of
// milliseconds. Anything else yields fallback.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Millisecond
	}

	return fallback
}
