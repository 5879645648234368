package config

import (
	_ "embed"
)

//go:embed defaults/guardian.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Run: RunConfig{
			Lives:            3,
			TimeLimit:        60,
			AttackCooldownMs: 500,
		},
		Scoring: ScoringConfig{
			Obstacle: 10,
			Powerup:  15,
		},
		Spawn: SpawnConfig{
			ClockMs:           1000,
			PowerupPeriodMs:   8500,
			PowerupLifetimeMs: 4000,
		},
		Physics: PhysicsConfig{
			PlayerSpeed:   0.2,
			FireballSpeed: 0.75,
			FlashMs:       200,
		},
	}
}
