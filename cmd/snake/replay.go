package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-run a recorded session headlessly from its seed and input log and
compare the result with the recorded score.

Examples:
  snake runs
  snake replay 0b6f6a8e-2f0e-4c1e-9a53-3c1f0f0f9a10`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.RunByID(args[0])
	if err != nil {
		return err
	}

	game, err := registry.Create(run.Variant)
	if err != nil {
		return err
	}

	state := loop.Replay(game, run.Runtime(), run.Ticks, run.Inputs)
	logger.Debug("replayed run", "id", run.ID, "ticks", run.Ticks, "inputs", len(run.Inputs))

	fmt.Printf("Run %s (%s, seed %d)\n", run.ID, run.Variant, run.Seed)
	fmt.Printf("  ticks:    %d\n", run.Ticks)
	fmt.Printf("  inputs:   %d\n", len(run.Inputs))
	fmt.Printf("  recorded: %d\n", run.Score)
	fmt.Printf("  replayed: %d\n", state.Score)

	if state.Score != run.Score {
		return fmt.Errorf("replay diverged: recorded score %d, replayed %d", run.Score, state.Score)
	}
	fmt.Println(state.Farewell())
	return nil
}
