package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The variant defaults to "classic".

Controls:
  W/A/S/D    - Steer up/left/down/right
  Q/Esc      - Quit

Examples:
  snake play
  snake play strict
  snake play --seed 42 --ups 6`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	cfg, err := runtimeConfig(cmd)
	if err != nil {
		return err
	}

	// Warn early if the board will not fit
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := tui.BoardFootprint(cfg.Cells())
		if w < needW || h < needH {
			logger.Warn("terminal is smaller than the board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH))
		}
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println(res.State.Farewell())
	recordRun(res)
	return nil
}
