// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quipnote/pkg/core"
	"github.com/aretw0/quipnote/pkg/joke"
)

const (
	// AppName is the application directory name.
	AppName = "quipnote"

	// FileName is the configuration file inside the config directory.
	FileName = "config.yaml"
)

// Config holds user settings. Zero values fall back to Defaults.
type Config struct {
	DataDir   string        `yaml:"data_dir"`
	Adapter   string        `yaml:"adapter"`
	Codec     string        `yaml:"codec"`
	SlotKey   string        `yaml:"slot_key"`
	JokeURL   string        `yaml:"joke_url"`
	Timeout   time.Duration `yaml:"timeout"`
	ReadOnly  bool          `yaml:"read_only"`
	RedisAddr string        `yaml:"redis_addr"`
	RedisDB   int           `yaml:"redis_db"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		DataDir: DefaultDataDir(),
		Adapter: "fs",
		Codec:   "json",
		SlotKey: core.DefaultSlotKey,
		JokeURL: joke.DefaultURL,
	}
}

// Load reads path on top of Defaults. An empty path means DefaultPath; a
// missing file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

// merge copies every non-zero field of other into c.
func (c *Config) merge(other Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.Adapter != "" {
		c.Adapter = other.Adapter
	}
	if other.Codec != "" {
		c.Codec = other.Codec
	}
	if other.SlotKey != "" {
		c.SlotKey = other.SlotKey
	}
	if other.JokeURL != "" {
		c.JokeURL = other.JokeURL
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.ReadOnly {
		c.ReadOnly = true
	}
	if other.RedisAddr != "" {
		c.RedisAddr = other.RedisAddr
	}
	if other.RedisDB != 0 {
		c.RedisDB = other.RedisDB
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/quipnote/config.yaml, falling back to
// $HOME/.config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(AppName, FileName)
	}
	return filepath.Join(home, ".config", AppName, FileName)
}

// DefaultDataDir returns $XDG_DATA_HOME/quipnote, falling back to
// $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}
