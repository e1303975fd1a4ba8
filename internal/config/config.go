package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	SuitIcons = "icon"
	SuitCodes = "code"
)

type Config struct {
	SuitStyle string `toml:"suit_style"`
	Color     bool   `toml:"color"`
	Debug     bool   `toml:"debug"`
	Seed      int64  `toml:"seed"` // 0 seeds from the clock
}

func Default() *Config {
	return &Config{
		SuitStyle: SuitIcons,
		Color:     true,
	}
}

// FilePath returns $XDG_CONFIG_HOME/twentyone/config.toml.
func FilePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "twentyone", "config.toml")
}

// Load builds the configuration from defaults, then the TOML file, then
// .env and the environment. An explicit path must exist; the default one may not.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("TWENTYONE_CONFIG")
	}
	if path == "" {
		if p := FilePath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TWENTYONE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TWENTYONE_SEED is not a number: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("TWENTYONE_SUIT_STYLE"); v != "" {
		cfg.SuitStyle = v
	}

	if os.Getenv("TWENTYONE_NO_COLOR") != "" {
		cfg.Color = false
	}

	if v := os.Getenv("TWENTYONE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TWENTYONE_DEBUG is not a boolean: %w", err)
		}
		cfg.Debug = debug
	}

	return nil
}

func (c *Config) Validate() error {
	if c.SuitStyle != SuitIcons && c.SuitStyle != SuitCodes {
		return fmt.Errorf("suit_style must be %q or %q, got %q", SuitIcons, SuitCodes, c.SuitStyle)
	}
	return nil
}
