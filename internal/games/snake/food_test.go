package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodRelocateRange(t *testing.T) {
	// 200px board, 20px cells
	cells := 200 / 20
	f := NewFood(core.Point{}, rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		p := f.Relocate(cells)
		if p.X < 0 || p.X >= cells || p.Y < 0 || p.Y >= cells {
			t.Fatalf("sample %d out of range: %v", i, p)
		}
		if f.Pos() != p {
			t.Fatalf("Relocate should store the new position")
		}
	}
}

func TestFoodRelocateCoversBoard(t *testing.T) {
	f := NewFood(core.Point{}, rand.New(rand.NewSource(11)))
	seen := make(map[core.Point]bool)

	for i := 0; i < 2000; i++ {
		seen[f.Relocate(4)] = true
	}
	if len(seen) != 16 {
		t.Errorf("expected all 16 cells of a 4x4 board to be drawn, got %d", len(seen))
	}
}

func TestFoodDeterminism(t *testing.T) {
	f1 := NewFood(core.Point{}, rand.New(rand.NewSource(42)))
	f2 := NewFood(core.Point{}, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		if a, b := f1.Relocate(10), f2.Relocate(10); a != b {
			t.Fatalf("sample %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestFoodRender(t *testing.T) {
	f := NewFood(core.Point{X: 3, Y: 4}, rand.New(rand.NewSource(1)))
	c := &recordingCanvas{}

	f.Render(c)
	if len(c.ops) != 1 || c.ops[0].color != core.ColorFood || len(c.ops[0].rects) != 1 {
		t.Fatalf("unexpected ops: %+v", c.ops)
	}
	if c.ops[0].rects[0] != core.NewRect(3, 4, 1, 1) {
		t.Errorf("rect = %+v", c.ops[0].rects[0])
	}

	f.Place(parked)
	c.ops = nil
	f.Render(c)
	if len(c.ops) != 0 {
		t.Errorf("parked food should not be drawn, got %+v", c.ops)
	}
}
