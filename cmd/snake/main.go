// snake is a minimal real-time snake game for the terminal, a desktop window
// or SSH.
//
// Usage:
//
//	snake play [variant]     - Play in the terminal
//	snake window [variant]   - Play in a desktop window
//	snake serve              - Start SSH server for remote play
//	snake variants           - List rule variants
//	snake runs               - List recorded runs
//	snake replay <run-id>    - Re-simulate a recorded run
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.snake, ./configs, embedded)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--ups <rate>        - Override updates per second
//	--db <path>         - Set run journal path (default: ~/.snake/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagUPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a minimal real-time snake game. Steer with W/A/S/D, eat the
food, and try not to run into yourself.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  variants  - Show all rule variants
  runs      - List recorded runs
  replay    - Re-simulate a recorded run

Examples:
  snake play
  snake play strict --ups 8
  snake window
  snake serve --ssh :2222
  snake replay 5f1c...`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagUPS, "ups", 0, "Updates per second (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
