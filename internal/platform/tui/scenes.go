package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/registry"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// GameTitle is shown on the start screen.
const GameTitle = "Energy Guardian Adventure"

const objectiveText = `Collect renewable energy
to restore the environment.

Avoid obstacles
so you don't lose energy.

Reach the energy goal
before time runs out!`

const controlsText = `Arrow keys / hjkl   walk
Space / F           shoot a fireball
Esc / P             pause and resume
S (while paused)    leave the level
Q / Ctrl+C          quit

You cannot shoot while walking, and
fireballs need half a second to recharge.`

// NewSceneRegistry registers a factory for every scene, all sharing kit.
func NewSceneRegistry(kit *Kit) *registry.Registry[Screen] {
	r := registry.New[Screen]()
	r.Register(scene.Start, func(scene.Payload) (Screen, error) {
		return newStartScreen(kit), nil
	})
	r.Register(scene.Objective, func(scene.Payload) (Screen, error) {
		return newTextScreen("Objective", objectiveText), nil
	})
	r.Register(scene.Controls, func(scene.Payload) (Screen, error) {
		return newTextScreen("Controls", controlsText), nil
	})
	r.Register(scene.Difficulty, func(scene.Payload) (Screen, error) {
		return newDifficultyScreen(kit)
	})
	r.Register(scene.Options, func(scene.Payload) (Screen, error) {
		return newOptionsScreen(kit)
	})
	r.Register(scene.LevelSelect, func(scene.Payload) (Screen, error) {
		return newLevelSelectScreen(kit), nil
	})
	r.Register(scene.Game, func(p scene.Payload) (Screen, error) {
		return newPlayScreen(kit, p)
	})
	r.Register(scene.LevelComplete, func(p scene.Payload) (Screen, error) {
		return newLevelCompleteScreen(kit, p), nil
	})
	r.Register(scene.GameOver, func(p scene.Payload) (Screen, error) {
		return newGameOverScreen(kit, p), nil
	})
	r.Register(scene.Scoreboard, func(scene.Payload) (Screen, error) {
		return NewScoreboardModel(kit.History, kit.Runtime.ScreenW, kit.Runtime.ScreenH), nil
	})
	return r
}

func goItem(label string, target scene.Name) menuItem {
	return menuItem{label: label, choose: func() tea.Cmd { return GoTo(scene.To(target)) }}
}

func newStartScreen(kit *Kit) *menuScreen {
	s := newMenuScreen(GameTitle, "")
	s.back = nil
	s.menu = newMenu(
		goItem("Start Game", scene.LevelSelect),
		goItem("Objective", scene.Objective),
		goItem("Controls", scene.Controls),
		goItem("Difficulty", scene.Difficulty),
		goItem("Options", scene.Options),
		goItem("High Scores", scene.Scoreboard),
		menuItem{label: "Reset Levels", choose: func() tea.Cmd {
			if err := kit.Progress.Reset(); err != nil {
				kit.Logger.Error("reset levels failed", "error", err)
				return s.setStatus("Could not reset levels: " + err.Error())
			}
			return s.setStatus("Levels reset. Only Level 1 is unlocked.")
		}},
		menuItem{label: "Quit", choose: func() tea.Cmd { return tea.Quit }},
	)
	return s
}

func newTextScreen(title, text string) *menuScreen {
	return newMenuScreen(title, text, goItem("Back", scene.Start))
}

func newDifficultyScreen(kit *Kit) (*menuScreen, error) {
	current, err := kit.Repo.LoadDifficulty()
	if err != nil {
		return nil, err
	}

	items := make([]menuItem, 0, len(config.Difficulties)+1)
	for _, d := range config.Difficulties {
		label := d.String()
		if d == current {
			label += "  (current)"
		}
		items = append(items, menuItem{label: label, choose: func() tea.Cmd {
			if err := kit.Repo.SaveDifficulty(d); err != nil {
				kit.Logger.Error("save difficulty failed", "error", err)
			}
			return GoTo(scene.To(scene.Start))
		}})
	}
	items = append(items, goItem("Back", scene.Start))

	s := newMenuScreen("Difficulty", difficultyBlurb())
	s.menu = newMenu(items...)
	for i, d := range config.Difficulties {
		if d == current {
			s.menu.cursor = i
		}
	}
	return s, nil
}

func difficultyBlurb() string {
	var b strings.Builder
	for i, d := range config.Difficulties {
		p := config.ProfileFor(d)
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-7s smoke every %v", d, p.SpawnInterval)
	}
	return b.String()
}
