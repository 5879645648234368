package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/progress"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// Placement hints of the levels are given in this reference space.
const (
	mapRefW = 800
	mapRefH = 600
)

// levelSelectScreen draws the four levels as a map and starts the chosen one.
type levelSelectScreen struct {
	kit        *Kit
	levels     []progress.Level
	difficulty config.Difficulty
	best       map[int]int
	cursor     int
	status     string
	keys       *KeyMapper
	screen     *core.Screen
}

func newLevelSelectScreen(kit *Kit) *levelSelectScreen {
	s := &levelSelectScreen{
		kit:    kit,
		levels: kit.Progress.Levels(),
		best:   make(map[int]int),
		keys:   NewKeyMapper(),
		screen: core.NewScreen(kit.Runtime.ScreenW, kit.Runtime.ScreenH),
	}
	difficulty, err := kit.Repo.LoadDifficulty()
	if err != nil {
		kit.Logger.Warn("could not load difficulty", "error", err)
		difficulty = config.DifficultyMedium
	}
	s.difficulty = difficulty
	if kit.History != nil {
		for n := 1; n <= len(s.levels); n++ {
			if score, err := kit.History.HighScore(n); err == nil {
				s.best[n] = score
			}
		}
	}
	return s
}

func (s *levelSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *levelSelectScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.screen.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch s.keys.MapKeyToMenuAction(msg) {
		case core.ActionQuit:
			return s, tea.Quit
		case core.ActionUp, core.ActionLeft:
			s.cursor = (s.cursor + len(s.levels) - 1) % len(s.levels)
			s.status = ""
		case core.ActionDown, core.ActionRight:
			s.cursor = (s.cursor + 1) % len(s.levels)
			s.status = ""
		case core.ActionConfirm:
			return s, s.start()
		case core.ActionBack:
			return s, GoTo(scene.To(scene.Start))
		}
	}
	return s, nil
}

// start launches the level under the cursor if it is unlocked.
func (s *levelSelectScreen) start() tea.Cmd {
	if !s.kit.Progress.IsUnlocked(s.cursor) {
		s.status = fmt.Sprintf("%s is locked. Complete the previous level first.", s.levels[s.cursor].Name)
		return nil
	}
	return GoTo(scene.Transition{
		Target: scene.Game,
		Payload: scene.Payload{
			Level:      s.cursor + 1,
			Difficulty: s.difficulty,
			EnergyGoal: s.levels[s.cursor].EnergyGoal,
		},
	})
}

// markerPos maps a level's placement hint onto the terminal, leaving the
// top two and bottom three rows for text.
func (s *levelSelectScreen) markerPos(l progress.Level, labelW int) (int, int) {
	w, h := s.screen.Width(), s.screen.Height()
	x := int(core.Lerp(1, float64(w-labelW-1), float64(l.X)/mapRefW))
	y := int(core.Lerp(3, float64(h-5), float64(l.Y)/mapRefH))
	return core.Clamp(x, 0, max(w-labelW, 0)), y
}

func (s *levelSelectScreen) View() string {
	scr := s.screen
	scr.Clear()

	scr.DrawTextCentered(0, "Select a Level", core.ColorBrightYellow)
	scr.DrawTextCentered(1, "Difficulty: "+s.difficulty.String(), core.ColorGray)

	for i, l := range s.levels {
		label := fmt.Sprintf("[%d] %s", i+1, l.Name)
		detail := fmt.Sprintf("goal %d", l.EnergyGoal)
		color := core.ColorGreen
		if !l.Unlocked {
			label = fmt.Sprintf("[x] %s", l.Name)
			detail = "locked"
			color = core.ColorGray
		} else if best := s.best[i+1]; best > 0 {
			detail += fmt.Sprintf(" · best %d", best)
		}
		if i == s.cursor {
			label = "> " + label + " <"
			color = core.ColorBrightYellow
		} else {
			label = "  " + label + "  "
		}

		x, y := s.markerPos(l, len(label))
		scr.DrawText(x, y, label, color)
		scr.DrawText(x+2, y+1, detail, core.ColorGray)
	}

	if s.status != "" {
		scr.DrawTextCentered(scr.Height()-2, s.status, core.ColorYellow)
	}
	scr.DrawTextCentered(scr.Height()-1, "←/→ choose · enter play · esc back", core.ColorGray)
	return RenderScreen(scr)
}
