package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		d        Difficulty
		factor   float64
		interval time.Duration
	}{
		{DifficultyEasy, 0.25, 1000 * time.Millisecond},
		{DifficultyMedium, 0.3125, 700 * time.Millisecond},
		{DifficultyHard, 0.4375, 300 * time.Millisecond},
		{Difficulty("Nightmare"), 0.3125, 700 * time.Millisecond},
		{Difficulty(""), 0.3125, 700 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			p := ProfileFor(tt.d)
			assert.Equal(t, tt.factor, p.SpeedFactor)
			assert.Equal(t, tt.interval, p.SpawnInterval)
		})
	}
}

func TestProfileObstacleSpeed(t *testing.T) {
	assert.Equal(t, 250.0, ProfileFor(DifficultyMedium).ObstacleSpeed(800))
	assert.Equal(t, 20.0, ProfileFor(DifficultyEasy).ObstacleSpeed(80))
}

func TestParseDifficulty(t *testing.T) {
	d, ok := ParseDifficulty("hard")
	require.True(t, ok)
	assert.Equal(t, DifficultyHard, d)

	d, ok = ParseDifficulty(" Easy ")
	require.True(t, ok)
	assert.Equal(t, DifficultyEasy, d)

	_, ok = ParseDifficulty("Difícil")
	assert.False(t, ok, "legacy names are for saves, not CLI input")
}

func TestLoadEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(defaultGameYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  lives: 5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Run.Lives)
	// Unspecified fields keep their defaults
	assert.Equal(t, 60, cfg.Run.TimeLimit)
	assert.Equal(t, 15, cfg.Scoring.Powerup)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  lives: 0\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run.lives")
}

func TestValidate(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())

	cfg.Spawn.PowerupPeriodMs = 0
	cfg.Physics.FireballSpeed = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn periods")
	assert.Contains(t, err.Error(), "physics speeds")
}

func TestDurations(t *testing.T) {
	cfg := DefaultGameConfig()
	assert.Equal(t, 500*time.Millisecond, cfg.Run.AttackCooldown())
	assert.Equal(t, time.Second, cfg.Spawn.Clock())
	assert.Equal(t, 8500*time.Millisecond, cfg.Spawn.PowerupPeriod())
	assert.Equal(t, 4*time.Second, cfg.Spawn.PowerupLifetime())
	assert.Equal(t, 200*time.Millisecond, cfg.Physics.Flash())
}
