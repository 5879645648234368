// Package config provides YAML-based game configuration loading and
// the difficulty profile table.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains the tunables for a level attempt.
type GameConfig struct {
	Run     RunConfig     `yaml:"run"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Physics PhysicsConfig `yaml:"physics"`
}

// RunConfig defines the starting resources of a run.
type RunConfig struct {
	Lives            int `yaml:"lives"`
	TimeLimit        int `yaml:"time_limit"` // seconds
	AttackCooldownMs int `yaml:"attack_cooldown_ms"`
}

// ScoringConfig defines points (and energy) awarded per event.
type ScoringConfig struct {
	Obstacle int `yaml:"obstacle"`
	Powerup  int `yaml:"powerup"`
}

// SpawnConfig defines the periodic timers that are not difficulty dependent.
type SpawnConfig struct {
	ClockMs           int `yaml:"clock_ms"`
	PowerupPeriodMs   int `yaml:"powerup_period_ms"`
	PowerupLifetimeMs int `yaml:"powerup_lifetime_ms"`
}

// PhysicsConfig defines movement speeds as fractions of the viewport width per second.
type PhysicsConfig struct {
	PlayerSpeed   float64 `yaml:"player_speed"`
	FireballSpeed float64 `yaml:"fireball_speed"`
	FlashMs       int     `yaml:"flash_ms"`
}

// AttackCooldown returns the minimum time between two accepted shots.
func (c RunConfig) AttackCooldown() time.Duration {
	return time.Duration(c.AttackCooldownMs) * time.Millisecond
}

// Clock returns the countdown tick period.
func (c SpawnConfig) Clock() time.Duration {
	return time.Duration(c.ClockMs) * time.Millisecond
}

// PowerupPeriod returns the time between power-up spawns.
func (c SpawnConfig) PowerupPeriod() time.Duration {
	return time.Duration(c.PowerupPeriodMs) * time.Millisecond
}

// PowerupLifetime returns how long an uncollected power-up stays on the field.
func (c SpawnConfig) PowerupLifetime() time.Duration {
	return time.Duration(c.PowerupLifetimeMs) * time.Millisecond
}

// Flash returns how long the hit feedback lasts.
func (c PhysicsConfig) Flash() time.Duration {
	return time.Duration(c.FlashMs) * time.Millisecond
}

// Validate checks that the configuration can drive a run.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Run.Lives <= 0 {
		errs = append(errs, fmt.Errorf("run.lives must be positive, got %d", c.Run.Lives))
	}
	if c.Run.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("run.time_limit must be positive, got %d", c.Run.TimeLimit))
	}
	if c.Run.AttackCooldownMs < 0 {
		errs = append(errs, fmt.Errorf("run.attack_cooldown_ms must not be negative, got %d", c.Run.AttackCooldownMs))
	}
	if c.Scoring.Obstacle < 0 || c.Scoring.Powerup < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if c.Spawn.ClockMs <= 0 || c.Spawn.PowerupPeriodMs <= 0 || c.Spawn.PowerupLifetimeMs <= 0 {
		errs = append(errs, errors.New("spawn periods must be positive"))
	}
	if c.Physics.PlayerSpeed <= 0 || c.Physics.FireballSpeed <= 0 {
		errs = append(errs, errors.New("physics speeds must be positive"))
	}
	return errors.Join(errs...)
}
