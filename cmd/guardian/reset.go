package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/energy-guardian/internal/progress"
)

var flagResetScores bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset level progress",
	Long: `Locks every level except the first and restores the default energy goals.
Run history is kept unless --scores is given.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also delete the recorded runs")
}

func runReset(_ *cobra.Command, _ []string) error {
	store, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer store.Close()

	prog, err := progress.OpenProgression(repo)
	if err != nil {
		return err
	}
	if err := prog.Reset(); err != nil {
		return err
	}
	fmt.Println("Levels reset. Only Level 1 is unlocked.")

	if flagResetScores {
		if err := store.ClearRuns(0); err != nil {
			return err
		}
		fmt.Println("Run history deleted.")
	}
	return nil
}
