package registry

import (
	"testing"

	"github.com/vovakirdan/treblecross/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string { return s.id }

func (s *stubGame) Title() string { return s.title }

func (s *stubGame) Reset(core.RuntimeConfig) {}

func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (s *stubGame) Render(*core.Screen) {}

func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create(stub_a) failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Created game ID = %s, want stub_a", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create with unknown ID should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists should be false for unknown IDs")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z", title: "Z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "B"} })

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Errorf("List should be sorted by ID, %s before %s", infos[i-1].ID, infos[i].ID)
		}
	}
}
