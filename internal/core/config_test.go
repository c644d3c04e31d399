package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BoardSize != 200 || cfg.CellSize != 20 || cfg.TickRate != 4 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.Cells() != 10 {
		t.Errorf("Cells() = %d, expected 10", cfg.Cells())
	}
	if got := (RuntimeConfig{BoardSize: 200}).Cells(); got != 0 {
		t.Errorf("Cells() with zero cell size = %d, expected 0", got)
	}
}

func TestFarewell(t *testing.T) {
	got := GameState{Score: 7}.Farewell()
	if got != "Congratulations, your score was: 7" {
		t.Errorf("Farewell() = %q", got)
	}
}
