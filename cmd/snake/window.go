package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a fixed-size desktop window titled "Snake Game" and play until it is
closed. The variant defaults to "classic".

Controls:
  W/A/S/D    - Steer up/left/down/right

Examples:
  snake window
  snake window strict --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	cfg, err := runtimeConfig(cmd)
	if err != nil {
		return err
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	res, err := window.Run(game, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println(res.State.Farewell())
	recordRun(res)
	return nil
}
