package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Generation GenerationConfig `yaml:"generation" toml:"generation"`
	Cache      CacheConfig      `yaml:"cache" toml:"cache"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

type WorldConfig struct {
	Width  int   `yaml:"width" toml:"width"`
	Height int   `yaml:"height" toml:"height"`
	Seed   int64 `yaml:"seed" toml:"seed"` // 0 picks a seed from the clock
	StartX int   `yaml:"start_x" toml:"start_x"`
}

type GenerationConfig struct {
	Complexity          int     `yaml:"complexity" toml:"complexity"`
	RoomCap             int     `yaml:"room_cap" toml:"room_cap"`
	ConnectBack         float64 `yaml:"connect_back" toml:"connect_back"`
	ConnectBackMinRooms int     `yaml:"connect_back_min_rooms" toml:"connect_back_min_rooms"`
	MaxTunnelDistance   int     `yaml:"max_tunnel_distance" toml:"max_tunnel_distance"`
	FogDensity          float64 `yaml:"fog_density" toml:"fog_density"`
	PlacementAttempts   int     `yaml:"placement_attempts" toml:"placement_attempts"`
	RoomCurveScript     string  `yaml:"room_curve_script" toml:"room_curve_script"`
}

type CacheConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // file, bolt, sqlite or memory
	Path    string `yaml:"path" toml:"path"`       // empty means the user data dir
}

type LoggingConfig struct {
	Level   string        `yaml:"level" toml:"level"`
	Format  string        `yaml:"format" toml:"format"` // "json" or "console"
	Console bool          `yaml:"console" toml:"console"`
	File    LogFileConfig `yaml:"file" toml:"file"`
}

type LogFileConfig struct {
	Enabled    bool   `yaml:"enabled" toml:"enabled"`
	Path       string `yaml:"path" toml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  80,
			Height: 41,
			StartX: 40,
		},
		Generation: GenerationConfig{
			Complexity:          5,
			RoomCap:             200,
			ConnectBack:         0.4,
			ConnectBackMinRooms: 5,
			MaxTunnelDistance:   16,
			PlacementAttempts:   1,
		},
		Cache: CacheConfig{
			Backend: "file",
		},
		Logging: LoggingConfig{
			Level:   "INFO",
			Format:  "console",
			Console: true,
			File: LogFileConfig{
				Path:       "deepfloor.log",
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml is TOML, anything else YAML. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := decode(path, data, cfg); err != nil {
				return nil, err
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DEEPFLOOR_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DEEPFLOOR_SEED: %w", err)
		}
		c.World.Seed = seed
	}
	if v := os.Getenv("DEEPFLOOR_CACHE_DIR"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the values the generator and cache depend on.
func (c *Config) Validate() error {
	switch {
	case c.World.Width < 16 || c.World.Height < 16:
		return fmt.Errorf("world size %dx%d too small", c.World.Width, c.World.Height)
	case c.World.StartX < 0 || c.World.StartX >= c.World.Width:
		return fmt.Errorf("start_x %d outside width %d", c.World.StartX, c.World.Width)
	case c.Generation.Complexity < 1:
		return fmt.Errorf("complexity %d must be positive", c.Generation.Complexity)
	case c.Generation.RoomCap < 1:
		return fmt.Errorf("room_cap %d must be positive", c.Generation.RoomCap)
	case c.Generation.ConnectBack < 0 || c.Generation.ConnectBack > 1:
		return fmt.Errorf("connect_back %v outside [0,1]", c.Generation.ConnectBack)
	case c.Generation.FogDensity < 0 || c.Generation.FogDensity > 1:
		return fmt.Errorf("fog_density %v outside [0,1]", c.Generation.FogDensity)
	case c.Generation.PlacementAttempts < 1:
		return fmt.Errorf("placement_attempts %d must be positive", c.Generation.PlacementAttempts)
	}
	switch c.Cache.Backend {
	case "file", "bolt", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}
