package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/energy-guardian/internal/config"
)

// DefaultVolume is used for absent or unreadable volume entries.
const DefaultVolume = 0.5

// Options are the audio and input settings of the options screen.
type Options struct {
	MusicVolume   float64
	SFXVolume     float64
	AmbientVolume float64
	Joystick      bool
}

// DefaultOptions returns the options of a first run.
func DefaultOptions() Options {
	return Options{
		MusicVolume:   DefaultVolume,
		SFXVolume:     DefaultVolume,
		AmbientVolume: DefaultVolume,
	}
}

// Repository loads and saves typed progress over a KV store.
type Repository struct {
	kv     KV
	logger *log.Logger
}

// NewRepository wraps kv. A nil logger discards output.
func NewRepository(kv KV, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Repository{kv: kv, logger: logger}
}

// LoadLevels returns the normalized level list. Absent or malformed data
// yields the defaults.
func (r *Repository) LoadLevels() ([]Level, error) {
	raw, ok, err := r.kv.Get(KeyLevels)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot load levels: %w", err)
	}
	if !ok {
		return DefaultLevels(), nil
	}
	levels := DecodeLevels(raw)
	if canonical, err := json.Marshal(levels); err == nil && string(canonical) != raw {
		r.logger.Debug("normalized stored levels", "stored", raw)
	}
	return levels, nil
}

// SaveLevels persists the level list after normalizing it.
func (r *Repository) SaveLevels(levels []Level) error {
	data, err := json.Marshal(levels)
	if err != nil {
		return fmt.Errorf("progress: cannot encode levels: %w", err)
	}
	// Round-trip so whatever is written is already in canonical shape
	data, err = json.Marshal(DecodeLevels(string(data)))
	if err != nil {
		return fmt.Errorf("progress: cannot encode levels: %w", err)
	}
	if err := r.kv.Set(KeyLevels, string(data)); err != nil {
		return fmt.Errorf("progress: cannot save levels: %w", err)
	}
	return nil
}

// ResetLevels forgets all unlock progress.
func (r *Repository) ResetLevels() error {
	if err := r.kv.Delete(KeyLevels); err != nil {
		return fmt.Errorf("progress: cannot reset levels: %w", err)
	}
	r.logger.Info("levels data cleared")
	return nil
}

// LoadDifficulty returns the selected difficulty, Medium when none was chosen.
func (r *Repository) LoadDifficulty() (config.Difficulty, error) {
	raw, _, err := r.kv.Get(KeyDifficulty)
	if err != nil {
		return config.DifficultyMedium, fmt.Errorf("progress: cannot load difficulty: %w", err)
	}
	d := NormalizeDifficulty(raw)
	if raw != "" && string(d) != raw {
		r.logger.Debug("normalized stored difficulty", "stored", raw, "difficulty", d)
	}
	return d, nil
}

// SaveDifficulty persists the selected difficulty.
func (r *Repository) SaveDifficulty(d config.Difficulty) error {
	if err := r.kv.Set(KeyDifficulty, string(NormalizeDifficulty(string(d)))); err != nil {
		return fmt.Errorf("progress: cannot save difficulty: %w", err)
	}
	return nil
}

// LoadOptions returns the stored options with defaults for missing entries.
func (r *Repository) LoadOptions() (Options, error) {
	opts := DefaultOptions()
	var err error
	if opts.MusicVolume, err = r.volume(KeyMusicVolume); err != nil {
		return DefaultOptions(), err
	}
	if opts.SFXVolume, err = r.volume(KeySFXVolume); err != nil {
		return DefaultOptions(), err
	}
	if opts.AmbientVolume, err = r.volume(KeyAmbientVolume); err != nil {
		return DefaultOptions(), err
	}
	raw, _, err := r.kv.Get(KeyJoystick)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("progress: cannot load joystick option: %w", err)
	}
	opts.Joystick = raw == "true"
	return opts, nil
}

// SaveOptions persists every option.
func (r *Repository) SaveOptions(opts Options) error {
	entries := []struct {
		key   string
		value string
	}{
		{KeyMusicVolume, formatVolume(opts.MusicVolume)},
		{KeySFXVolume, formatVolume(opts.SFXVolume)},
		{KeyAmbientVolume, formatVolume(opts.AmbientVolume)},
		{KeyJoystick, strconv.FormatBool(opts.Joystick)},
	}
	for _, e := range entries {
		if err := r.kv.Set(e.key, e.value); err != nil {
			return fmt.Errorf("progress: cannot save %s: %w", e.key, err)
		}
	}
	return nil
}

func (r *Repository) volume(key string) (float64, error) {
	raw, ok, err := r.kv.Get(key)
	if err != nil {
		return DefaultVolume, fmt.Errorf("progress: cannot load %s: %w", key, err)
	}
	if !ok {
		return DefaultVolume, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return DefaultVolume, nil
	}
	return ClampVolume(v), nil
}

// ClampVolume restricts v to [0, 1].
func ClampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func formatVolume(v float64) string {
	return strconv.FormatFloat(ClampVolume(v), 'f', -1, 64)
}
