package config

import (
	"strings"
	"time"
)

// Difficulty is one of the three selectable difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// String returns the canonical name of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// Valid reports whether d is one of the canonical difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty matches a CLI argument such as "hard" case-insensitively.
// Returns false for anything that is not a canonical name.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, true
		}
	}
	return "", false
}

// Profile holds the obstacle tuning for a difficulty.
type Profile struct {
	// SpeedFactor is the obstacle speed as a fraction of the viewport width per second.
	SpeedFactor float64

	// SpawnInterval is the time between obstacle spawns.
	SpawnInterval time.Duration
}

// ObstacleSpeed returns the obstacle speed in cells per second for the given width.
func (p Profile) ObstacleSpeed(viewportWidth int) float64 {
	return float64(viewportWidth) * p.SpeedFactor
}

// ProfileFor returns the fixed profile for a difficulty.
// Unrecognized values get the Medium profile.
func ProfileFor(d Difficulty) Profile {
	switch d {
	case DifficultyEasy:
		return Profile{SpeedFactor: 0.25, SpawnInterval: 1000 * time.Millisecond}
	case DifficultyHard:
		return Profile{SpeedFactor: 0.4375, SpawnInterval: 300 * time.Millisecond}
	default:
		return Profile{SpeedFactor: 0.3125, SpawnInterval: 700 * time.Millisecond}
	}
}
