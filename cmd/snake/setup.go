package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const defaultVariant = "classic"

var (
	logger  = log.Default()
	logFile *os.File
)

// setupLogger builds the shared logger from --log-level and --log-file.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
	}
}

// runtimeConfig loads the config file and applies --seed and --ups.
func runtimeConfig(cmd *cobra.Command) (core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	rt := cfg.Runtime(flagSeed)
	if cmd.Flags().Changed("ups") {
		if flagUPS <= 0 {
			return core.RuntimeConfig{}, fmt.Errorf("--ups must be positive, got %d", flagUPS)
		}
		rt.TickRate = flagUPS
	}
	return rt, nil
}

// variantArg returns the variant named by args, or the default.
func variantArg(args []string) (string, error) {
	variant := defaultVariant
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return "", fmt.Errorf("unknown variant %q (run 'snake variants' to see them)", variant)
	}
	return variant, nil
}

// recordRun stores a finished session in the run journal. Failures are
// logged and otherwise ignored.
func recordRun(res loop.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.NewRun(res.Variant, res.Config, res.Ticks, res.Inputs, res.State.Score))
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id, "score", res.State.Score, "seed", res.Config.Seed)
}
