package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	volumebar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/progress"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

const volumeStep = 0.1

// optionRow identifies a line of the options screen.
type optionRow int

const (
	rowMusic optionRow = iota
	rowSFX
	rowAmbient
	rowJoystick
	rowBack
	rowCount
)

// optionsScreen edits volumes and the joystick flag. Every change is saved
// immediately.
type optionsScreen struct {
	kit    *Kit
	opts   progress.Options
	cursor optionRow
	bar    volumebar.Model
	keys   *KeyMapper
	help   help.Model
	err    error
	width  int
	height int
}

func newOptionsScreen(kit *Kit) (*optionsScreen, error) {
	opts, err := kit.Repo.LoadOptions()
	if err != nil {
		return nil, err
	}
	return &optionsScreen{
		kit:  kit,
		opts: opts,
		bar:  volumebar.New(volumebar.WithDefaultGradient(), volumebar.WithWidth(24)),
		keys: NewKeyMapper(),
		help: help.New(),
	}, nil
}

func (s *optionsScreen) Init() tea.Cmd {
	return nil
}

func (s *optionsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.help.Width = msg.Width
	case tea.KeyMsg:
		switch s.keys.MapKeyToMenuAction(msg) {
		case core.ActionQuit:
			return s, tea.Quit
		case core.ActionUp:
			s.cursor = (s.cursor + rowCount - 1) % rowCount
		case core.ActionDown:
			s.cursor = (s.cursor + 1) % rowCount
		case core.ActionLeft:
			s.adjust(-volumeStep)
		case core.ActionRight:
			s.adjust(volumeStep)
		case core.ActionConfirm:
			if s.cursor == rowBack {
				return s, GoTo(scene.To(scene.Start))
			}
			s.adjust(0)
		case core.ActionBack:
			return s, GoTo(scene.To(scene.Start))
		}
	}
	return s, nil
}

// adjust changes the value under the cursor. A zero delta toggles the
// joystick flag and leaves volumes alone.
func (s *optionsScreen) adjust(delta float64) {
	switch s.cursor {
	case rowMusic:
		s.opts.MusicVolume = stepVolume(s.opts.MusicVolume, delta)
	case rowSFX:
		s.opts.SFXVolume = stepVolume(s.opts.SFXVolume, delta)
	case rowAmbient:
		s.opts.AmbientVolume = stepVolume(s.opts.AmbientVolume, delta)
	case rowJoystick:
		s.opts.Joystick = !s.opts.Joystick
	default:
		return
	}
	s.err = s.kit.Repo.SaveOptions(s.opts)
	if s.err != nil {
		s.kit.Logger.Error("save options failed", "error", s.err)
	}
}

// stepVolume moves v by delta and rounds to one decimal so repeated
// steps land exactly on 0 and 1.
func stepVolume(v, delta float64) float64 {
	v = progress.ClampVolume(v + delta)
	return float64(int(v*10+0.5)) / 10
}

func (s *optionsScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Options"))
	b.WriteString("\n")

	volumes := []struct {
		row   optionRow
		label string
		value float64
	}{
		{rowMusic, "Music", s.opts.MusicVolume},
		{rowSFX, "Sound effects", s.opts.SFXVolume},
		{rowAmbient, "Ambient", s.opts.AmbientVolume},
	}
	for _, v := range volumes {
		line := fmt.Sprintf("%-14s %s", v.label, s.bar.ViewAs(v.value))
		b.WriteString(s.line(v.row, line))
	}

	joystick := "off"
	if s.opts.Joystick {
		joystick = "on"
	}
	b.WriteString(s.line(rowJoystick, fmt.Sprintf("%-14s %s", "Joystick", joystick)))
	b.WriteString(s.line(rowBack, "Back"))

	if s.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Could not save: " + s.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(s.help.View(s.keys.keys)))
	return place(s.width, s.height, panelStyle.Render(b.String()))
}

func (s *optionsScreen) line(row optionRow, text string) string {
	if row == s.cursor {
		return selectedStyle.Render("> "+text) + "\n"
	}
	return itemStyle.Render("  "+text) + "\n"
}
