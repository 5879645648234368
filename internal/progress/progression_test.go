package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgression(t *testing.T) (*Progression, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	p, err := OpenProgression(NewRepository(kv, nil))
	require.NoError(t, err)
	return p, kv
}

func TestUnlockNextFirstLevel(t *testing.T) {
	p, kv := newTestProgression(t)

	require.NoError(t, p.UnlockNext(1))

	levels := p.Levels()
	defaults := DefaultLevels()
	assert.Equal(t, defaults[0], levels[0])
	assert.True(t, levels[1].Unlocked)
	assert.Equal(t, defaults[2], levels[2])
	assert.Equal(t, defaults[3], levels[3])

	// Persisted immediately
	raw, ok, _ := kv.Get(KeyLevels)
	require.True(t, ok)
	assert.True(t, DecodeLevels(raw)[1].Unlocked)
}

func TestUnlockNextIdempotent(t *testing.T) {
	p, _ := newTestProgression(t)
	require.NoError(t, p.UnlockNext(2))
	first := p.Levels()
	require.NoError(t, p.UnlockNext(2))
	assert.Equal(t, first, p.Levels())
	assert.True(t, p.IsUnlocked(2))
	assert.False(t, p.IsUnlocked(1), "unlocking level 3 does not touch level 2")
}

func TestUnlockNextOutOfRange(t *testing.T) {
	p, kv := newTestProgression(t)
	for _, n := range []int{4, 5, 0, -1} {
		require.NoError(t, p.UnlockNext(n))
	}
	assert.Equal(t, DefaultLevels(), p.Levels())
	_, ok, _ := kv.Get(KeyLevels)
	assert.False(t, ok, "no-op must not write")
}

func TestIsUnlocked(t *testing.T) {
	p, _ := newTestProgression(t)
	assert.True(t, p.IsUnlocked(0))
	assert.False(t, p.IsUnlocked(1))
	assert.False(t, p.IsUnlocked(-1))
	assert.False(t, p.IsUnlocked(4))
}

func TestProgressionLevelLookup(t *testing.T) {
	p, _ := newTestProgression(t)
	l, ok := p.Level(3)
	require.True(t, ok)
	assert.Equal(t, "Level 3", l.Name)
	assert.Equal(t, 200, l.EnergyGoal)

	_, ok = p.Level(0)
	assert.False(t, ok)
	_, ok = p.Level(5)
	assert.False(t, ok)

	assert.True(t, p.Final(4))
	assert.False(t, p.Final(3))
}

func TestProgressionReset(t *testing.T) {
	p, kv := newTestProgression(t)
	require.NoError(t, p.UnlockNext(1))
	require.NoError(t, p.UnlockNext(2))

	require.NoError(t, p.Reset())
	assert.Equal(t, DefaultLevels(), p.Levels())
	_, ok, _ := kv.Get(KeyLevels)
	assert.False(t, ok)
}

func TestProgressionMigratesLegacySave(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyLevels, `[{"name":"Nível 1","unlocked":true},{"name":"Nível 2","unlocked":false}]`))

	p, err := OpenProgression(NewRepository(kv, nil))
	require.NoError(t, err)
	require.NoError(t, p.UnlockNext(1))

	raw, _, _ := kv.Get(KeyLevels)
	assert.NotContains(t, raw, "Nível")
	assert.Len(t, DecodeLevels(raw), LevelCount)
}

type failingKV struct{ *MemoryKV }

func (failingKV) Set(string, string) error { return errors.New("disk full") }

func TestUnlockNextPersistError(t *testing.T) {
	p, err := OpenProgression(NewRepository(failingKV{NewMemoryKV()}, nil))
	require.NoError(t, err)

	err = p.UnlockNext(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestProgressionReload(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewRepository(kv, nil)
	a, err := OpenProgression(repo)
	require.NoError(t, err)
	b, err := OpenProgression(repo)
	require.NoError(t, err)

	require.NoError(t, a.UnlockNext(1))
	assert.False(t, b.IsUnlocked(1))
	require.NoError(t, b.Reload())
	assert.True(t, b.IsUnlocked(1))
}
