package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// newLevelCompleteScreen unlocks the level after p.Level and offers the next one.
func newLevelCompleteScreen(kit *Kit, p scene.Payload) *menuScreen {
	if err := kit.Progress.UnlockNext(p.Level); err != nil {
		kit.Logger.Error("could not unlock next level", "level", p.Level, "error", err)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Level %d complete!\n\nScore: %d", p.Level, p.Score)
	if best, ok := bestScore(kit, p.Level); ok {
		if p.Score >= best {
			body.WriteString("  (new high score)")
		} else {
			fmt.Fprintf(&body, "\nHigh score: %d", best)
		}
	}

	var items []menuItem
	if kit.Progress.Final(p.Level) {
		body.WriteString("\n\nCongratulations! You completed the game!")
	} else if next, ok := kit.Progress.Level(p.Level + 1); ok {
		payload := scene.Payload{
			Level:      p.Level + 1,
			Difficulty: p.Difficulty,
			EnergyGoal: next.EnergyGoal,
		}
		items = append(items, menuItem{label: "Next Level", choose: func() tea.Cmd {
			return GoTo(scene.Transition{Target: scene.Game, Payload: payload})
		}})
	}
	items = append(items,
		goItem("Level Select", scene.LevelSelect),
		goItem("Main Menu", scene.Start),
	)
	return newMenuScreen("Level Complete", body.String(), items...)
}

// newGameOverScreen offers to replay the same level with the same goal.
func newGameOverScreen(kit *Kit, p scene.Payload) *menuScreen {
	body := fmt.Sprintf("Level %d failed.\n\nScore: %d", p.Level, p.Score)
	if best, ok := bestScore(kit, p.Level); ok && best > 0 {
		body += fmt.Sprintf("\nHigh score: %d", best)
	}

	restart := scene.Payload{
		Level:      p.Level,
		Difficulty: p.Difficulty,
		EnergyGoal: p.EnergyGoal,
	}
	return newMenuScreen("Game Over", body,
		menuItem{label: "Restart", choose: func() tea.Cmd {
			return GoTo(scene.Transition{Target: scene.Game, Payload: restart})
		}},
		goItem("Level Select", scene.LevelSelect),
		goItem("Main Menu", scene.Start),
	)
}

func bestScore(kit *Kit, level int) (int, bool) {
	if kit.History == nil {
		return 0, false
	}
	best, err := kit.History.HighScore(level)
	if err != nil {
		kit.Logger.Warn("could not read high score", "level", level, "error", err)
		return 0, false
	}
	return best, true
}
