package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                   { return s.id }
func (s *stubGame) Title() string                { return strings.ToUpper(s.id) }
func (s *stubGame) Reset(cfg core.RuntimeConfig) {}
func (s *stubGame) Update()                      {}
func (s *stubGame) Pressed(k core.Key)           {}
func (s *stubGame) Render(c core.Canvas)         {}
func (s *stubGame) State() core.GameState        { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "STUB_A" {
				t.Errorf("Title = %q, expected STUB_A", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
