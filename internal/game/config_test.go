package game

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_TagsMatchDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, env.Parse(&cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Setenv("BREAKOUT_LIVES", "5")
	t.Setenv("BREAKOUT_STAGE_DELAY", "1500ms")

	var cfg Config
	require.NoError(t, env.Parse(&cfg))
	assert.Equal(t, 5, cfg.Lives)
	assert.Equal(t, 1500*time.Millisecond, cfg.StageDelay)
}

func TestConfig_Geometry(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 54, cfg.Width())
	assert.Equal(t, 28, cfg.PaddleRow())
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no rows", func(c *Config) { c.Rows = 0 }},
		{"no cols", func(c *Config) { c.Cols = -1 }},
		{"brick width", func(c *Config) { c.BrickWidth = 0 }},
		{"brick top", func(c *Config) { c.BrickTop = -1 }},
		{"too short", func(c *Config) { c.Height = c.BrickTop + c.Rows + 3 }},
		{"paddle too wide", func(c *Config) { c.PaddleWidth = c.Width() + 1 }},
		{"paddle step", func(c *Config) { c.PaddleStep = 0 }},
		{"negative lives", func(c *Config) { c.Lives = -1 }},
		{"speed range", func(c *Config) { c.MaxSpeed = c.MinSpeed - 1 }},
		{"zero speed", func(c *Config) { c.MinSpeed = 0 }},
		{"slowdown", func(c *Config) { c.SpeedMultiplier = 0.9 }},
		{"delay", func(c *Config) { c.GameOverDelay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
