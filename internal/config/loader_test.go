package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultInputCoversRepeatDelay(t *testing.T) {
	cfg := Default()
	holdMs := cfg.Input.HoldTicks * 1000 / cfg.TickRate
	assert.GreaterOrEqual(t, holdMs, 600, "hold window must outlast common auto-repeat delays")

	repressMs := cfg.Input.RepressTicks * 1000 / cfg.TickRate
	assert.Less(t, repressMs, 100, "re-press gap must stay below double-tap spacing")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, 800.0, cfg.Player.Speed)
	assert.Equal(t, 50.0, cfg.Enemy.Width)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".stg")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tick_rate: 30\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 1000.0, cfg.PlayerShot.Speed, "unset keys keep defaults")
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
player:
  speed: 400
  width: 20
  height: 20
cull_offscreen: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 400.0, cfg.Player.Speed)
	assert.Equal(t, 20.0, cfg.Player.Width)
	assert.True(t, cfg.CullOffscreen)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tick_rate: [1, 2"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"empty playfield", func(c *Config) { c.Playfield.Width = 0 }},
		{"zero enemy box", func(c *Config) { c.Enemy.Height = 0 }},
		{"negative shot speed", func(c *Config) { c.EnemyShot.Speed = -1 }},
		{"zero roll range", func(c *Config) { c.Spawn.RollRange = 0 }},
		{"sentinel out of range", func(c *Config) { c.Spawn.Sentinel = 100 }},
		{"zero hold ticks", func(c *Config) { c.Input.HoldTicks = 0 }},
		{"zero repress ticks", func(c *Config) { c.Input.RepressTicks = 0 }},
		{"repress beyond hold", func(c *Config) { c.Input.RepressTicks = c.Input.HoldTicks + 1 }},
	}

	require.NoError(t, Default().Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
