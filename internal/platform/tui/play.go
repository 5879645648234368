package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/games/guardian"
	"github.com/vovakirdan/energy-guardian/internal/run"
	"github.com/vovakirdan/energy-guardian/internal/scene"
	"github.com/vovakirdan/energy-guardian/internal/storage"
)

// playScreen runs one level attempt on the tick loop.
type playScreen struct {
	kit        *Kit
	game       *guardian.Game
	screen     *core.Screen
	keys       *KeyMapper
	inputFrame core.InputFrame
	config     core.RuntimeConfig
	runID      string
	done       bool
}

func newPlayScreen(kit *Kit, p scene.Payload) (*playScreen, error) {
	cfg := kit.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sfx := 0.0
	if opts, err := kit.Repo.LoadOptions(); err == nil {
		sfx = opts.SFXVolume
	} else {
		kit.Logger.Warn("could not load options", "error", err)
	}

	params := run.Params{
		Level:      p.Level,
		Difficulty: p.Difficulty,
		EnergyGoal: p.EnergyGoal,
		Config:     kit.Game,
	}
	game := guardian.New(params, cfg, soundSink{logger: kit.Logger, volume: sfx})
	kit.Logger.Debug("run started",
		"run", game.Run().ID(), "level", p.Level, "difficulty", p.Difficulty, "goal", p.EnergyGoal)

	return &playScreen{
		kit:        kit,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		config:     cfg,
		runID:      game.Run().ID(),
	}, nil
}

// Init starts the tick loop.
func (s *playScreen) Init() tea.Cmd {
	return tickCmd(s.config, s.runID)
}

// Update handles messages and updates the field.
func (s *playScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.keys.MapKeyToFrame(msg, &s.inputFrame) {
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.config = s.config.WithSize(msg.Width, msg.Height)
		s.screen.Resize(msg.Width, msg.Height)
		s.game.Resize(msg.Width, msg.Height)
	case TickMsg:
		if msg.RunID != s.runID || s.done {
			return s, nil
		}
		return s.handleTick()
	}
	return s, nil
}

// handleTick processes one simulation tick.
func (s *playScreen) handleTick() (Screen, tea.Cmd) {
	s.game.Step(s.inputFrame)
	s.inputFrame.Clear()

	if t, ok := s.game.Result(); ok {
		s.done = true
		if t.Target != scene.LevelSelect {
			s.record(t)
		}
		return s, GoTo(t)
	}
	return s, tickCmd(s.config, s.runID)
}

// record saves the finished run. Failures are logged, the game goes on.
func (s *playScreen) record(t scene.Transition) {
	snap := s.game.State()
	outcome := storage.OutcomeFailed
	if t.Target == scene.LevelComplete {
		outcome = storage.OutcomeCompleted
	}
	s.kit.Logger.Info("run finished",
		"run", snap.ID, "level", snap.Level, "outcome", outcome, "score", snap.Score)

	if s.kit.History == nil {
		return
	}
	_, err := s.kit.History.SaveRun(storage.RunRecord{
		RunID:         snap.ID,
		Player:        s.kit.Player,
		Level:         snap.Level,
		Difficulty:    snap.Difficulty.String(),
		Outcome:       outcome,
		Score:         snap.Score,
		Energy:        snap.Energy,
		EnergyGoal:    snap.EnergyGoal,
		Lives:         snap.Lives,
		TimeRemaining: snap.TimeRemaining,
	})
	if err != nil {
		s.kit.Logger.Error("could not save run", "run", snap.ID, "error", err)
	}
}

// View renders the field.
func (s *playScreen) View() string {
	s.game.Render(s.screen)
	return RenderScreen(s.screen)
}

// soundSink stands in for the audio mixer: sounds are logged at the
// configured effect volume.
type soundSink struct {
	run.NopSink
	logger *log.Logger
	volume float64
}

func (k soundSink) PlaySound(name string) {
	if k.volume <= 0 {
		return
	}
	k.logger.Debug("sound", "name", name, "volume", k.volume)
}
