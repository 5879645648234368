package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/progress"
	"github.com/vovakirdan/energy-guardian/internal/registry"
	"github.com/vovakirdan/energy-guardian/internal/scene"
	"github.com/vovakirdan/energy-guardian/internal/storage"
)

// Screen is one scene of the app. Screens request a scene change by
// returning GoTo(transition) as a command.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
}

// RunHistory records finished runs and serves the scoreboard.
// *storage.Store implements it.
type RunHistory interface {
	SaveRun(r storage.RunRecord) (int64, error)
	TopRuns(level, limit int) ([]storage.RunRecord, error)
	HighScore(level int) (int, error)
	AllLevelStats() (map[int]*storage.LevelStats, error)
}

// Kit is what every screen of one session shares.
type Kit struct {
	Progress *progress.Progression
	Repo     *progress.Repository
	History  RunHistory // nil when no database is available
	Game     config.GameConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Player   string // SSH user, empty for local play
}

// NewKit loads progression from kv and fills in defaults for the optional parts.
func NewKit(kv progress.KV, history RunHistory, game config.GameConfig, runtime core.RuntimeConfig, logger *log.Logger) (*Kit, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	repo := progress.NewRepository(kv, logger)
	prog, err := progress.OpenProgression(repo)
	if err != nil {
		return nil, err
	}
	return &Kit{
		Progress: prog,
		Repo:     repo,
		History:  history,
		Game:     game,
		Runtime:  runtime,
		Logger:   logger,
	}, nil
}

// TransitionMsg asks the app to switch scenes.
type TransitionMsg scene.Transition

// GoTo returns a command that switches to t.
func GoTo(t scene.Transition) tea.Cmd {
	return func() tea.Msg { return TransitionMsg(t) }
}

// App is the top-level Bubble Tea model: it owns the current screen and
// builds the next one from the scene registry.
type App struct {
	kit      *Kit
	scenes   *registry.Registry[Screen]
	current  Screen
	name     scene.Name
	width    int
	height   int
	err      error
	quitting bool
}

// NewApp creates the app positioned on the start transition.
func NewApp(kit *Kit, start scene.Transition) (App, error) {
	a := App{
		kit:    kit,
		scenes: NewSceneRegistry(kit),
		width:  kit.Runtime.ScreenW,
		height: kit.Runtime.ScreenH,
	}
	s, err := a.scenes.Create(start)
	if err != nil {
		return App{}, err
	}
	a.current = s
	a.name = start.Target
	return a, nil
}

// Init starts the first screen.
func (a App) Init() tea.Cmd {
	return a.current.Init()
}

// Update routes messages to the current screen and performs transitions.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TransitionMsg:
		return a.transition(scene.Transition(msg))

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.kit.Runtime = a.kit.Runtime.WithSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, cmd
}

func (a App) transition(t scene.Transition) (tea.Model, tea.Cmd) {
	next, err := a.scenes.Create(t)
	if err != nil {
		a.kit.Logger.Error("scene transition failed", "target", t.Target, "error", err)
		if errors.Is(err, registry.ErrUnknownScene) || t.Target == scene.Start {
			a.err = err
			return a, tea.Quit
		}
		next, err = a.scenes.Create(scene.To(scene.Start))
		if err != nil {
			a.err = err
			return a, tea.Quit
		}
		t = scene.To(scene.Start)
	}
	a.kit.Logger.Debug("scene", "from", a.name, "to", t)

	a.current = next
	a.name = t.Target
	sized, sizeCmd := a.current.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.current = sized
	return a, tea.Batch(a.current.Init(), sizeCmd)
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	return a.current.View()
}

// Scene returns the name of the current scene.
func (a App) Scene() scene.Name {
	return a.name
}

// Err returns the error that stopped the app, if any.
func (a App) Err() error {
	return a.err
}

// Run starts the Bubble Tea program on the start transition and blocks until it exits.
func Run(kit *Kit, start scene.Transition) error {
	app, err := NewApp(kit, start)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if a, ok := final.(App); ok {
		return a.Err()
	}
	return nil
}
