package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/progress"
	"github.com/vovakirdan/energy-guardian/internal/registry"
	"github.com/vovakirdan/energy-guardian/internal/scene"
	"github.com/vovakirdan/energy-guardian/internal/storage"
)

// fakeHistory keeps runs in memory.
type fakeHistory struct {
	saved []storage.RunRecord
	best  map[int]int
}

func (h *fakeHistory) SaveRun(r storage.RunRecord) (int64, error) {
	h.saved = append(h.saved, r)
	if h.best == nil {
		h.best = make(map[int]int)
	}
	h.best[r.Level] = max(h.best[r.Level], r.Score)
	return int64(len(h.saved)), nil
}

func (h *fakeHistory) TopRuns(level, _ int) ([]storage.RunRecord, error) {
	var out []storage.RunRecord
	for _, r := range h.saved {
		if level == 0 || r.Level == level {
			out = append(out, r)
		}
	}
	return out, nil
}

func (h *fakeHistory) HighScore(level int) (int, error) {
	return h.best[level], nil
}

func (h *fakeHistory) AllLevelStats() (map[int]*storage.LevelStats, error) {
	stats := make(map[int]*storage.LevelStats)
	for _, r := range h.saved {
		st, ok := stats[r.Level]
		if !ok {
			st = &storage.LevelStats{Level: r.Level}
			stats[r.Level] = st
		}
		st.Attempts++
		if r.Outcome == storage.OutcomeCompleted {
			st.Completions++
		}
		st.HighScore = max(st.HighScore, r.Score)
	}
	return stats, nil
}

func newTestKit(t *testing.T) (*Kit, *fakeHistory) {
	t.Helper()
	history := &fakeHistory{}
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	kit, err := NewKit(progress.NewMemoryKV(), history, config.DefaultGameConfig(), runtime, nil)
	require.NoError(t, err)
	return kit, history
}

// transitionOf runs cmd and returns the transition it requests.
func transitionOf(t *testing.T, cmd tea.Cmd) scene.Transition {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(TransitionMsg)
	require.True(t, ok, "command does not request a transition")
	return scene.Transition(msg)
}

func TestNewAppStartsOnStart(t *testing.T) {
	kit, _ := newTestKit(t)
	app, err := NewApp(kit, scene.To(scene.Start))
	require.NoError(t, err)

	assert.Equal(t, scene.Start, app.Scene())
	assert.Contains(t, app.View(), GameTitle)
}

func TestAppTransitions(t *testing.T) {
	kit, _ := newTestKit(t)
	app, err := NewApp(kit, scene.To(scene.Start))
	require.NoError(t, err)

	for _, name := range []scene.Name{
		scene.Objective, scene.Controls, scene.Difficulty, scene.Options,
		scene.LevelSelect, scene.Scoreboard, scene.Start,
	} {
		model, _ := app.Update(TransitionMsg(scene.To(name)))
		app = model.(App)
		assert.Equal(t, name, app.Scene())
		assert.NotEmpty(t, app.View())
	}
	assert.NoError(t, app.Err())
}

func TestAppUnknownSceneStops(t *testing.T) {
	kit, _ := newTestKit(t)
	app, err := NewApp(kit, scene.To(scene.Start))
	require.NoError(t, err)

	model, cmd := app.Update(TransitionMsg(scene.To("nowhere")))
	app = model.(App)
	require.NotNil(t, cmd)
	assert.ErrorIs(t, app.Err(), registry.ErrUnknownScene)
	assert.Equal(t, scene.Start, app.Scene())
}

func TestAppResizeUpdatesRuntime(t *testing.T) {
	kit, _ := newTestKit(t)
	app, err := NewApp(kit, scene.To(scene.Start))
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, kit.Runtime.ScreenW)
	assert.Equal(t, 40, kit.Runtime.ScreenH)
}

func TestStartScreenResetLevels(t *testing.T) {
	kit, _ := newTestKit(t)
	require.NoError(t, kit.Progress.UnlockNext(1))
	require.True(t, kit.Progress.IsUnlocked(1))

	s := newStartScreen(kit)
	for s.menu.items[s.menu.cursor].label != "Reset Levels" {
		s.menu.move(1)
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, kit.Progress.IsUnlocked(1))
	assert.NotEmpty(t, s.status)
}

func TestDifficultyScreenSaves(t *testing.T) {
	kit, _ := newTestKit(t)
	s, err := newDifficultyScreen(kit)
	require.NoError(t, err)
	assert.Equal(t, 1, s.menu.cursor, "cursor starts on the current difficulty")

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, scene.Start, transitionOf(t, cmd).Target)

	d, err := kit.Repo.LoadDifficulty()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, d)
}

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	m := newMenu(
		menuItem{label: "a", disabled: true},
		menuItem{label: "b"},
		menuItem{label: "c", disabled: true},
		menuItem{label: "d"},
	)
	assert.Equal(t, 1, m.cursor)

	m.move(1)
	assert.Equal(t, 3, m.cursor)
	m.move(1)
	assert.Equal(t, 1, m.cursor)
	m.move(-1)
	assert.Equal(t, 3, m.cursor)
}

func TestOpenFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "guardian.log")
	logger, closer, err := OpenFileLogger(path, log.InfoLevel)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("scene", "to", "start")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scene")
	assert.NotContains(t, string(data), "hidden")
}
