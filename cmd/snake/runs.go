package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent runs from the run journal, newest first.
Each run can be re-simulated with 'snake replay <id>'.

Examples:
  snake runs
  snake runs --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-36s  %-8s  %-6s  %-6s  %-20s  %s\n", "ID", "Variant", "Score", "Ticks", "Seed", "Date")
	fmt.Printf("  %-36s  %-8s  %-6s  %-6s  %-20s  %s\n", "--", "-------", "-----", "-----", "----", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-36s  %-8s  %-6d  %-6d  %-20d  %s\n", r.ID, r.Variant, r.Score, r.Ticks, r.Seed, dateStr)
	}
	return nil
}
