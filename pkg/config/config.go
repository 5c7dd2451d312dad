// Package config loads proofgen settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Defaults ([Default])
//  2. A TOML file, normally ~/.config/proofgen/config.toml
//  3. PROOFGEN_* environment variables ([Config.ApplyEnv])
//
// Command-line flags are applied on top by the CLI.
//
// An example file:
//
//	[render]
//	width = 1200
//	height = 675
//	formats = ["svg", "png"]
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	rate_limit = 5.0
//	burst = 10
//
//	[session]
//	backend = "mongo"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config is the full set of settings.
type Config struct {
	Render  RenderConfig  `toml:"render"`
	Cache   CacheConfig   `toml:"cache"`
	Redis   RedisConfig   `toml:"redis"`
	Server  ServerConfig  `toml:"server"`
	Session SessionConfig `toml:"session"`
	Mongo   MongoConfig   `toml:"mongo"`
}

type RenderConfig struct {
	Width       int      `toml:"width"`
	Height      int      `toml:"height"`
	Formats     []string `toml:"formats"`
	PromptStyle string   `toml:"prompt_style"`
}

type CacheConfig struct {
	Backend string   `toml:"backend"` // file, memory, redis, none
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type ServerConfig struct {
	Addr      string   `toml:"addr"`
	RateLimit float64  `toml:"rate_limit"` // requests per second, 0 disables
	Burst     int      `toml:"burst"`
	ResultTTL Duration `toml:"result_ttl"`
	Formats   []string `toml:"formats"` // rendered on every generate call besides svg
}

type SessionConfig struct {
	Backend string `toml:"backend"` // file, memory, redis, mongo
	Dir     string `toml:"dir"`
}

type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Duration is a time.Duration that decodes from TOML strings like "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:       1200,
			Height:      675,
			Formats:     []string{"svg"},
			PromptStyle: "canonical",
		},
		Cache: CacheConfig{
			Backend: "file",
			TTL:     Duration{7 * 24 * time.Hour},
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "proofgen:",
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8080",
			RateLimit: 5,
			Burst:     10,
			ResultTTL: Duration{time.Hour},
		},
		Session: SessionConfig{Backend: "file"},
		Mongo:   MongoConfig{Database: "proofgen"},
	}
}

// Dir returns ~/.config/proofgen, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "proofgen"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "proofgen"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads defaults, then the file at path, then the environment.
// An empty path means [DefaultPath]; a missing default file is not an
// error, but a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg.ApplyEnv(os.LookupEnv)
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

// Parse decodes TOML text on top of the defaults. The environment is not
// consulted.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and backend names.
func (c Config) Validate() error {
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("render size must not be negative")
	}
	switch strings.ToLower(c.Cache.Backend) {
	case "", "file", "memory", "redis", "none":
	default:
		return fmt.Errorf("cache.backend %q: want file, memory, redis or none", c.Cache.Backend)
	}
	switch strings.ToLower(c.Session.Backend) {
	case "", "file", "memory", "redis", "mongo":
	default:
		return fmt.Errorf("session.backend %q: want file, memory, redis or mongo", c.Session.Backend)
	}
	if c.Server.RateLimit < 0 || c.Server.Burst < 0 {
		return fmt.Errorf("server rate limit must not be negative")
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", err
	}
	return b.String(), nil
}
