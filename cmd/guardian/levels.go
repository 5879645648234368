package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/energy-guardian/internal/progress"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long:  `Shows every level with its energy goal and whether it is unlocked.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	store, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer store.Close()

	prog, err := progress.OpenProgression(repo)
	if err != nil {
		return err
	}
	difficulty, err := repo.LoadDifficulty()
	if err != nil {
		return err
	}

	fmt.Printf("Levels (difficulty: %s)\n", difficulty)
	fmt.Println()
	fmt.Printf("  %-3s  %-10s  %-8s  %s\n", "#", "Name", "Status", "Energy goal")
	fmt.Printf("  %-3s  %-10s  %-8s  %s\n", "-", "----", "------", "-----------")
	for i, lvl := range prog.Levels() {
		status := "locked"
		if lvl.Unlocked {
			status = "open"
		}
		fmt.Printf("  %-3d  %-10s  %-8s  %d\n", i+1, lvl.Name, status, lvl.EnergyGoal)
	}

	fmt.Println()
	fmt.Println("Run 'guardian play <n>' to play an unlocked level.")
	return nil
}
