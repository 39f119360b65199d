// Package config loads settings from defaults, a TOML file and the
// environment. Flags are applied on top by cmd/todo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todo/internal/store"
)

// Backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	DefaultBackend     = BackendJSON
	DefaultDataDir     = "~/.todo"
	DefaultLogLevel    = "warn"
	DefaultColorScheme = "light"
	configFileName     = "config.toml"
)

type Config struct {
	Backend     string `toml:"backend"`
	DataDir     string `toml:"data_dir"`
	StorageKey  string `toml:"storage_key"`
	LogLevel    string `toml:"log_level"`
	ColorScheme string `toml:"color_scheme"`
}

func Defaults() Config {
	return Config{
		Backend:     DefaultBackend,
		DataDir:     DefaultDataDir,
		StorageKey:  store.DefaultKey,
		LogLevel:    DefaultLogLevel,
		ColorScheme: DefaultColorScheme,
	}
}

// Load applies, in order: defaults, the TOML file at path (or the user
// config file when path is empty and one exists), then TODO_* env vars.
// An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = userConfigFile()
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	loadFromEnv(&cfg)
	cfg.DataDir = ExpandPath(cfg.DataDir)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return fmt.Errorf("toml: %w", err)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TODO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODO_STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_COLOR_SCHEME"); v != "" {
		cfg.ColorScheme = v
	}
}

// userConfigFile returns $XDG_CONFIG_HOME/todo/config.toml, falling back
// to ~/.config/todo/config.toml.
func userConfigFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo", configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todo", configFileName)
}

// Validate rejects values nothing downstream understands.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("backend: unknown %q (want json, sqlite or memory)", c.Backend)
	}
	if c.Backend != BackendMemory && strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir: empty")
	}
	if err := store.CheckKey(c.StorageKey); err != nil {
		return fmt.Errorf("storage_key: %w", err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown %q", c.LogLevel)
	}
	switch c.ColorScheme {
	case "light", "dark":
	default:
		return fmt.Errorf("color_scheme: unknown %q (want light or dark)", c.ColorScheme)
	}
	return nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	return p
}
