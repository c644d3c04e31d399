package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestSnakeTranslation(t *testing.T) {
	s := NewSnake(pts(0, 0, 0, 1), DirRight)

	if !s.Update() {
		t.Fatal("first Update() should move")
	}
	if got, want := s.Body(), pts(1, 0, 0, 0); !slices.Equal(got, want) {
		t.Fatalf("after one update body = %v, expected %v", got, want)
	}

	if !s.Update() {
		t.Fatal("second Update() should move")
	}
	if got, want := s.Body(), pts(2, 0, 1, 0); !slices.Equal(got, want) {
		t.Fatalf("after two updates body = %v, expected %v", got, want)
	}
}

func TestSnakeUpdateDirections(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Point
	}{
		{DirLeft, core.Point{X: 4, Y: 5}},
		{DirRight, core.Point{X: 6, Y: 5}},
		{DirUp, core.Point{X: 5, Y: 4}},
		{DirDown, core.Point{X: 5, Y: 6}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := NewSnake(pts(5, 5), tc.dir)
			s.Update()
			if s.Head() != tc.expected {
				t.Errorf("head = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestSnakeUpdatePreservesLength(t *testing.T) {
	s := NewSnake(pts(5, 5, 4, 5, 3, 5, 2, 5), DirRight)
	turns := []Direction{DirDown, DirLeft, DirDown, DirRight, DirUp, DirRight}

	for i := 0; i < 30; i++ {
		s.SetDirection(turns[i%len(turns)])
		before := s.Len()
		if s.Update() && s.Len() != before {
			t.Fatalf("tick %d: length changed from %d to %d", i, before, s.Len())
		}
	}
}

func TestSnakeSelfCollisionFreezes(t *testing.T) {
	// Head at (1,1) heading right into (2,1), the tail.
	body := pts(1, 1, 1, 2, 2, 2, 2, 1)
	s := NewSnake(body, DirRight)

	if s.Update() {
		t.Fatal("Update() should report a blocked move")
	}
	if got := s.Body(); !slices.Equal(got, body) {
		t.Errorf("body changed on collision: %v, expected %v", got, body)
	}
}

func TestSnakeIsCollide(t *testing.T) {
	s := NewSnake(pts(3, 3, 3, 4), DirUp)

	if !s.IsCollide(core.Point{X: 3, Y: 3}) {
		t.Error("head should collide")
	}
	if !s.IsCollide(core.Point{X: 3, Y: 4}) {
		t.Error("tail should collide")
	}
	if s.IsCollide(core.Point{X: 4, Y: 3}) {
		t.Error("free cell should not collide")
	}
}

func TestSnakeSetDirection(t *testing.T) {
	all := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, current := range all {
		for _, requested := range all {
			s := NewSnake(pts(5, 5), current)
			adopted := s.SetDirection(requested)

			if requested == current.Opposite() {
				if adopted || s.Direction() != current {
					t.Errorf("%s -> %s: reversal should be rejected", current, requested)
				}
				continue
			}
			if !adopted || s.Direction() != requested {
				t.Errorf("%s -> %s: should be adopted, got %s", current, requested, s.Direction())
			}
		}
	}
}

func TestNewSnakeEmptyBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSnake with empty body should panic")
		}
	}()
	NewSnake(nil, DirRight)
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := pts(1, 1, 1, 2)
	s := NewSnake(body, DirUp)
	body[0] = core.Point{X: 9, Y: 9}

	if s.Head() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("snake should not alias the caller's slice, head = %v", s.Head())
	}
}

func TestSnakeGrow(t *testing.T) {
	t.Run("lazy", func(t *testing.T) {
		s := NewSnake(pts(2, 0, 1, 0), DirRight)
		s.Grow(GrowLazy)
		if got, want := s.Body(), pts(2, 0, 1, 0, 0, -1); !slices.Equal(got, want) {
			t.Fatalf("body = %v, expected %v", got, want)
		}
		s.Update()
		if got, want := s.Body(), pts(3, 0, 2, 0, 1, 0); !slices.Equal(got, want) {
			t.Errorf("after update body = %v, expected %v", got, want)
		}
	})

	t.Run("immediate", func(t *testing.T) {
		s := NewSnake(pts(2, 0, 1, 0), DirRight)
		s.Grow(GrowImmediate)
		if got, want := s.Body(), pts(2, 0, 1, 0, 1, 0); !slices.Equal(got, want) {
			t.Fatalf("body = %v, expected %v", got, want)
		}
		s.Update()
		if got, want := s.Body(), pts(3, 0, 2, 0, 1, 0); !slices.Equal(got, want) {
			t.Errorf("after update body = %v, expected %v", got, want)
		}
	})
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}
