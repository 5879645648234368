package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/energy-guardian/internal/core"
	"github.com/vovakirdan/energy-guardian/internal/platform/tui"
	"github.com/vovakirdan/energy-guardian/internal/scene"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Start the game",
	Long: `Start the game at the main menu, or go straight into an unlocked level.

Controls:
  Arrows/hjkl  - Walk
  Space/F      - Shoot a fireball
  Esc/P        - Pause
  S            - Leave the level (while paused)
  Q/Ctrl+C     - Quit

Logs are written to ~/.guardian/guardian.log while the game runs.

Examples:
  guardian play
  guardian play 3
  guardian play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[0])
		}
		level = n
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, kv := openStore()
	if store != nil {
		defer store.Close()
	}

	appLogger, logFile, err := tui.OpenFileLogger(tui.DefaultLogPath, logger.GetLevel())
	if err != nil {
		logger.Warn("could not open log file, game logs are discarded", "error", err)
	} else {
		defer logFile.Close()
	}

	var history tui.RunHistory
	if store != nil {
		history = store
	}
	kit, err := tui.NewKit(kv, history, gameCfg, runtime, appLogger)
	if err != nil {
		return err
	}

	start, err := startTransition(kit, level)
	if err != nil {
		return err
	}
	return tui.Run(kit, start)
}

// startTransition picks the first scene: the menu, or level n when it is unlocked.
func startTransition(kit *tui.Kit, n int) (scene.Transition, error) {
	if n == 0 {
		return scene.To(scene.Start), nil
	}
	lvl, ok := kit.Progress.Level(n)
	if !ok {
		return scene.Transition{}, fmt.Errorf("no level %d, run 'guardian levels' to see them", n)
	}
	if !lvl.Unlocked {
		return scene.Transition{}, fmt.Errorf("%s is locked, complete level %d first", lvl.Name, n-1)
	}
	difficulty, err := kit.Repo.LoadDifficulty()
	if err != nil {
		return scene.Transition{}, err
	}
	return scene.Transition{
		Target: scene.Game,
		Payload: scene.Payload{
			Level:      n,
			Difficulty: difficulty,
			EnergyGoal: lvl.EnergyGoal,
		},
	}, nil
}
