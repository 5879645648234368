package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/energy-guardian/internal/progress"
	"github.com/vovakirdan/energy-guardian/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, across all levels or for one level,
followed by per-level statistics.

Examples:
  guardian scores
  guardian scores 2 --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > progress.LevelCount {
			return fmt.Errorf("invalid level %q (want 1-%d)", args[0], progress.LevelCount)
		}
		level = n
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(level, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if level == 0 {
		fmt.Println("High Scores - all levels")
	} else {
		fmt.Printf("High Scores - Level %d\n", level)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'guardian play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %-9s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %-9s  %-10s  %s\n", "----", "-----", "-----", "----------", "------", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-6d  %-5d  %-10s  %-9s  %-10s  %s\n",
			i+1, r.Score, r.Level, r.Difficulty, r.Outcome, player, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	for n := 1; n <= progress.LevelCount; n++ {
		if level != 0 && n != level {
			continue
		}
		st, ok := stats[n]
		if !ok {
			continue
		}
		fmt.Printf("Level %d: %d attempts, %d completed, best %d, average %.0f\n",
			n, st.Attempts, st.Completions, st.HighScore, st.AvgScore)
	}
	return nil
}
