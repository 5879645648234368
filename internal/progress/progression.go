package progress

import "fmt"

// Progression tracks which levels are unlocked. Every mutation is persisted
// through the repository before returning.
type Progression struct {
	repo   *Repository
	levels []Level
}

// OpenProgression loads the current level list from repo.
func OpenProgression(repo *Repository) (*Progression, error) {
	levels, err := repo.LoadLevels()
	if err != nil {
		return nil, err
	}
	return &Progression{repo: repo, levels: levels}, nil
}

// UnlockNext unlocks the level after completedLevel (1-indexed).
// The 1-indexed level number is the 0-indexed position of the next level,
// so completing level 1 unlocks levels[1]. Completing the last level is a no-op.
func (p *Progression) UnlockNext(completedLevel int) error {
	if completedLevel < 1 || completedLevel >= len(p.levels) {
		return nil
	}
	p.levels[completedLevel].Unlocked = true
	if err := p.repo.SaveLevels(p.levels); err != nil {
		return fmt.Errorf("progress: unlock after level %d: %w", completedLevel, err)
	}
	return nil
}

// IsUnlocked reports whether the level at 0-indexed position levelIndex is playable.
func (p *Progression) IsUnlocked(levelIndex int) bool {
	if levelIndex < 0 || levelIndex >= len(p.levels) {
		return false
	}
	return p.levels[levelIndex].Unlocked
}

// Levels returns a copy of the level list.
func (p *Progression) Levels() []Level {
	out := make([]Level, len(p.levels))
	copy(out, p.levels)
	return out
}

// Level returns level n (1-indexed).
func (p *Progression) Level(n int) (Level, bool) {
	if n < 1 || n > len(p.levels) {
		return Level{}, false
	}
	return p.levels[n-1], true
}

// Final reports whether n is the last level.
func (p *Progression) Final(n int) bool {
	return n == len(p.levels)
}

// Reset deletes stored progress and reverts to the default list.
func (p *Progression) Reset() error {
	if err := p.repo.ResetLevels(); err != nil {
		return err
	}
	p.levels = DefaultLevels()
	return nil
}

// Reload re-reads the level list, picking up changes made by another writer.
func (p *Progression) Reload() error {
	levels, err := p.repo.LoadLevels()
	if err != nil {
		return err
	}
	p.levels = levels
	return nil
}
