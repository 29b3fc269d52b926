package registry

import (
	"testing"

	"github.com/vovakirdan/tapball/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create().ID() = %q, expected stub_a", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_b" && info.Title != "Stub stub_b" {
			t.Errorf("List() title = %q, expected Stub stub_b", info.Title)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List() = %v, expected sorted [stub_a stub_b]", ids)
	}
}

type describedGame struct{ stubGame }

func (describedGame) Description() string { return "has a blurb" }

func TestListDescriptions(t *testing.T) {
	Register("stub_c", func() Game { return describedGame{stubGame{id: "stub_c"}} })

	for _, info := range List() {
		switch info.ID {
		case "stub_c":
			if info.Description != "has a blurb" {
				t.Errorf("Description = %q, expected the game's blurb", info.Description)
			}
		case "stub_a":
			if info.Description != "" {
				t.Errorf("Description = %q for a game without one", info.Description)
			}
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
