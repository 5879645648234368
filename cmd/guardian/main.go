// guardian is a terminal arcade game: keep the smoke away, collect solar
// energy and reach the level's energy goal before time runs out.
//
// Usage:
//
//	guardian play [level]       - Start the game (menu, or straight into a level)
//	guardian levels             - List levels with lock state and energy goals
//	guardian difficulty [name]  - Show or set the difficulty
//	guardian options            - Show or set audio and input options
//	guardian reset              - Lock every level except the first
//	guardian scores [level]     - Show the best runs
//	guardian serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.guardian/guardian.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/energy-guardian/internal/config"
	"github.com/vovakirdan/energy-guardian/internal/progress"
	"github.com/vovakirdan/energy-guardian/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// logger writes CLI diagnostics to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "guardian"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guardian",
	Short: "Energy Guardian - protect the environment in your terminal",
	Long: `Energy Guardian is a terminal arcade game. Smoke drifts in from the
right, solar panels appear for a few seconds, and you shoot fireballs to keep
the air clean while collecting enough energy to finish each of four levels.

Available commands:
  play        - Start the game
  levels      - Show levels and what is unlocked
  difficulty  - Show or change the difficulty
  options     - Show or change audio and input options
  reset       - Reset level progress
  scores      - View the best runs
  serve       - Start SSH server for remote play

Examples:
  guardian play
  guardian play 2
  guardian difficulty hard
  guardian scores 1
  guardian serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFPS(flagFPS); err != nil {
			return err
		}
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

// checkFPS rejects tick rates the game loop cannot run at.
func checkFPS(fps int) error {
	if fps < 1 {
		return fmt.Errorf("--fps must be at least 1, got %d", fps)
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.guardian/guardian.db", "Path to the progress and scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(difficultyCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// openStore opens the database. When it cannot be opened the game keeps
// working on an in-memory store and nothing is saved.
// The returned store is nil in that case.
func openStore() (*storage.Store, progress.KV) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "error", err)
		return nil, progress.NewMemoryKV()
	}
	return store, store
}

// openRepository opens the database and wraps it in a progress repository.
// Commands that only manage settings use it and fail when the database is unavailable.
func openRepository() (*storage.Store, *progress.Repository, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, progress.NewRepository(store, logger), nil
}

func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	logger.Debug("game config loaded", "lives", cfg.Run.Lives, "time_limit", cfg.Run.TimeLimit)
	return cfg, nil
}
