// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the on-disk configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Loop  LoopConfig  `yaml:"loop"`
	Start StartConfig `yaml:"start"`
}

// BoardConfig defines the board geometry in pixels.
type BoardConfig struct {
	SizePx int `yaml:"size_px"`
	CellPx int `yaml:"cell_px"`
}

// LoopConfig defines loop timing.
type LoopConfig struct {
	UPS int `yaml:"ups"`
}

// StartConfig defines the initial snake and food placement.
type StartConfig struct {
	Body      []PointConfig `yaml:"body"`
	Direction string        `yaml:"direction"`
	Food      PointConfig   `yaml:"food"`
}

// PointConfig is a grid cell.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Default returns the hardcoded defaults, identical to defaults/snake.yaml.
func Default() Config {
	start := core.DefaultStart()
	body := make([]PointConfig, len(start.Body))
	for i, p := range start.Body {
		body[i] = PointConfig{X: p.X, Y: p.Y}
	}
	def := core.DefaultConfig()
	return Config{
		Board: BoardConfig{SizePx: def.BoardSize, CellPx: def.CellSize},
		Loop:  LoopConfig{UPS: def.TickRate},
		Start: StartConfig{
			Body:      body,
			Direction: start.Direction,
			Food:      PointConfig{X: start.Food.X, Y: start.Food.Y},
		},
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Board.SizePx <= 0 {
		errs = append(errs, fmt.Errorf("board.size_px must be positive, got %d", c.Board.SizePx))
	}
	if c.Board.CellPx <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_px must be positive, got %d", c.Board.CellPx))
	} else if c.Board.SizePx%c.Board.CellPx != 0 {
		errs = append(errs, fmt.Errorf("board.cell_px %d does not divide board.size_px %d", c.Board.CellPx, c.Board.SizePx))
	}
	if c.Loop.UPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.ups must be positive, got %d", c.Loop.UPS))
	}
	if len(c.Start.Body) == 0 {
		errs = append(errs, errors.New("start.body must not be empty"))
	}
	switch c.Start.Direction {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("start.direction must be up, down, left or right, got %q", c.Start.Direction))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Runtime converts c into the config handed to a game.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	body := make([]core.Point, len(c.Start.Body))
	for i, p := range c.Start.Body {
		body[i] = core.Point{X: p.X, Y: p.Y}
	}
	return core.RuntimeConfig{
		BoardSize: c.Board.SizePx,
		CellSize:  c.Board.CellPx,
		TickRate:  c.Loop.UPS,
		Seed:      seed,
		Start: core.StartLayout{
			Body:      body,
			Direction: c.Start.Direction,
			Food:      core.Point{X: c.Start.Food.X, Y: c.Start.Food.Y},
		},
	}
}
