package progress

import (
	"encoding/json"
	"math"
	"regexp"

	"github.com/vovakirdan/energy-guardian/internal/config"
)

// legacyDifficulties maps names written by the Portuguese release.
var legacyDifficulties = map[string]config.Difficulty{
	"Fácil":   config.DifficultyEasy,
	"Médio":   config.DifficultyMedium,
	"Difícil": config.DifficultyHard,
}

// legacyLevelName matches the localized "Level" prefix of old saves.
var legacyLevelName = regexp.MustCompile(`(?i)^N[ií]vel\s+`)

// NormalizeDifficulty maps a stored difficulty name to a canonical value.
// Canonical and legacy names are accepted; anything else is Medium.
func NormalizeDifficulty(s string) config.Difficulty {
	if d := config.Difficulty(s); d.Valid() {
		return d
	}
	if d, ok := legacyDifficulties[s]; ok {
		return d
	}
	return config.DifficultyMedium
}

// DecodeLevels normalizes the raw JSON stored under KeyLevels.
// Invalid JSON is treated like an absent value.
func DecodeLevels(raw string) []Level {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return NormalizeLevels(nil)
	}
	return NormalizeLevels(v)
}

// NormalizeLevels reconciles a decoded JSON value with the default level list.
// The result always has LevelCount entries; extra stored entries are ignored.
func NormalizeLevels(v any) []Level {
	defaults := DefaultLevels()
	stored, ok := v.([]any)
	if !ok || len(stored) == 0 {
		return defaults
	}

	levels := make([]Level, LevelCount)
	for i := range levels {
		fallback := defaults[i]
		if i >= len(stored) {
			levels[i] = fallback
			continue
		}
		entry, _ := stored[i].(map[string]any) // nil map reads as all-absent
		levels[i] = Level{
			Name:       stringField(entry, "name", fallback.Name),
			Unlocked:   boolField(entry, "unlocked", fallback.Unlocked),
			EnergyGoal: goalField(entry, "energyGoal", fallback.EnergyGoal),
			X:          intField(entry, "x", fallback.X),
			Y:          intField(entry, "y", fallback.Y),
		}
	}
	levels[0].Unlocked = true
	return levels
}

func stringField(m map[string]any, key, fallback string) string {
	s, ok := m[key].(string)
	if !ok {
		return fallback
	}
	s = legacyLevelName.ReplaceAllString(s, "Level ")
	if s == "" {
		return fallback
	}
	return s
}

func boolField(m map[string]any, key string, fallback bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return fallback
}

func intField(m map[string]any, key string, fallback int) int {
	f, ok := m[key].(float64)
	if !ok || math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return fallback
	}
	return int(f)
}

// goalField is intField for energy goals, which must be positive.
func goalField(m map[string]any, key string, fallback int) int {
	if goal := intField(m, key, fallback); goal > 0 {
		return goal
	}
	return fallback
}
