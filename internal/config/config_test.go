package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultsMatchSurface(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 80, cfg.World.Width)
	assert.Equal(t, 41, cfg.World.Height)
	assert.Equal(t, 40, cfg.World.StartX)
	assert.Equal(t, 5, cfg.Generation.Complexity)
	assert.Equal(t, 200, cfg.Generation.RoomCap)
	assert.Equal(t, 1, cfg.Generation.PlacementAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().World, cfg.World)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "deepfloor.yaml", `
world:
  seed: 1234
generation:
  complexity: 7
  fog_density: 0.1
cache:
  backend: bolt
  path: /tmp/floors
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.World.Seed)
	assert.Equal(t, 7, cfg.Generation.Complexity)
	assert.InDelta(t, 0.1, cfg.Generation.FogDensity, 1e-9)
	assert.Equal(t, "bolt", cfg.Cache.Backend)
	assert.Equal(t, 80, cfg.World.Width, "unset keys keep defaults")
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "deepfloor.toml", `
[world]
seed = 99
start_x = 10

[cache]
backend = "sqlite"

[logging]
level = "DEBUG"
format = "json"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.World.Seed)
	assert.Equal(t, 10, cfg.World.StartX)
	assert.Equal(t, "sqlite", cfg.Cache.Backend)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEEPFLOOR_SEED", "42")
	t.Setenv("DEEPFLOOR_CACHE_DIR", "/var/tmp/df")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.World.Seed)
	assert.Equal(t, "/var/tmp/df", cfg.Cache.Path)
	assert.Equal(t, "WARN", cfg.Logging.Level)
}

func TestBadSeedEnv(t *testing.T) {
	t.Setenv("DEEPFLOOR_SEED", "forty")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny world", func(c *Config) { c.World.Width = 4 }},
		{"start off map", func(c *Config) { c.World.StartX = 80 }},
		{"zero complexity", func(c *Config) { c.Generation.Complexity = 0 }},
		{"connect back above one", func(c *Config) { c.Generation.ConnectBack = 1.5 }},
		{"negative fog", func(c *Config) { c.Generation.FogDensity = -0.1 }},
		{"no placement attempts", func(c *Config) { c.Generation.PlacementAttempts = 0 }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "tape" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMalformedFile(t *testing.T) {
	p := writeFile(t, "bad.yaml", "world: [unclosed")
	_, err := Load(p)
	assert.Error(t, err)
}
