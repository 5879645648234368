package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// menuItem is one selectable line of a menu.
type menuItem struct {
	label    string
	disabled bool
	choose   func() tea.Cmd
}

// menu is a vertical list with a cursor, shared by the menu screens.
type menu struct {
	items  []menuItem
	cursor int
}

func newMenu(items ...menuItem) menu {
	m := menu{items: items}
	if len(items) > 0 && items[0].disabled {
		m.move(1)
	}
	return m
}

// move steps the cursor by delta, skipping disabled items and wrapping around.
func (m *menu) move(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	for range n {
		m.cursor = (m.cursor + delta + n) % n
		if !m.items[m.cursor].disabled {
			return
		}
	}
}

// choose runs the item under the cursor.
func (m menu) choose() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	if item.disabled || item.choose == nil {
		return nil
	}
	return item.choose()
}

func (m menu) view() string {
	var b strings.Builder
	for i, item := range m.items {
		switch {
		case item.disabled:
			b.WriteString(disabledStyle.Render("  " + item.label))
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("> " + item.label))
		default:
			b.WriteString(itemStyle.Render("  " + item.label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// menuScreen is a titled menu with optional text above it and a help footer.
// Back returns to the start screen unless back is overridden.
type menuScreen struct {
	title  string
	body   string
	status string
	menu   menu
	back   tea.Cmd
	keys   *KeyMapper
	help   help.Model
	width  int
	height int
}

func newMenuScreen(title, body string, items ...menuItem) *menuScreen {
	return &menuScreen{
		title: title,
		body:  body,
		menu:  newMenu(items...),
		back:  GoTo(scene.To(scene.Start)),
		keys:  NewKeyMapper(),
		help:  help.New(),
	}
}

func (s *menuScreen) Init() tea.Cmd {
	return nil
}

func (s *menuScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.help.Width = msg.Width
	case tea.KeyMsg:
		switch s.keys.MapKeyToMenuAction(msg) {
		case core.ActionQuit:
			return s, tea.Quit
		case core.ActionUp:
			s.menu.move(-1)
		case core.ActionDown:
			s.menu.move(1)
		case core.ActionConfirm:
			s.status = ""
			return s, s.menu.choose()
		case core.ActionBack:
			return s, s.back
		}
	}
	return s, nil
}

func (s *menuScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title))
	b.WriteString("\n")
	if s.body != "" {
		b.WriteString(textStyle.Render(s.body))
		b.WriteString("\n\n")
	}
	b.WriteString(s.menu.view())
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(s.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(s.help.View(s.keys.keys)))
	return place(s.width, s.height, panelStyle.Render(b.String()))
}

// setStatus shows msg below the menu.
func (s *menuScreen) setStatus(msg string) tea.Cmd {
	s.status = msg
	return nil
}
