package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/energy-guardian/internal/config"
)

var difficultyCmd = &cobra.Command{
	Use:   "difficulty [easy|medium|hard]",
	Short: "Show or set the difficulty",
	Long: `Without an argument, shows the selected difficulty and the profile of each.
With an argument, selects that difficulty for the next runs.

Examples:
  guardian difficulty
  guardian difficulty hard`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"easy", "medium", "hard"},
	RunE:      runDifficulty,
}

func runDifficulty(_ *cobra.Command, args []string) error {
	store, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		d, ok := config.ParseDifficulty(args[0])
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", args[0])
		}
		if err := repo.SaveDifficulty(d); err != nil {
			return err
		}
		fmt.Printf("Difficulty set to %s\n", d)
		return nil
	}

	current, err := repo.LoadDifficulty()
	if err != nil {
		return err
	}
	for _, d := range config.Difficulties {
		marker := " "
		if d == current {
			marker = "*"
		}
		p := config.ProfileFor(d)
		fmt.Printf("%s %-7s  smoke speed %.4g x width/s, one every %v\n", marker, d, p.SpeedFactor, p.SpawnInterval)
	}
	return nil
}
