package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func factory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegistryRegisterAndCreate(t *testing.T) {
	r := New()
	if err := r.Register("b", factory("b")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("a", factory("a")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].Title != "Stub b" {
		t.Errorf("unexpected list %+v", list)
	}

	g, err := r.Create("a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "a" {
		t.Errorf("created %q, expected a", g.ID())
	}

	g2, _ := r.Create("a")
	if g == g2 {
		t.Error("Create should return a new instance every time")
	}
}

func TestRegistryErrors(t *testing.T) {
	r := New()
	if err := r.Register("", factory("x")); err == nil {
		t.Error("expected error for empty ID")
	}
	if err := r.Register("x", nil); err == nil {
		t.Error("expected error for nil factory")
	}
	if err := r.Register("x", factory("x")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("x", factory("x")); err == nil {
		t.Error("expected error for duplicate ID")
	}
	if _, err := r.Create("missing"); err == nil {
		t.Error("expected error for unknown ID")
	}
	if r.Exists("missing") || !r.Exists("x") {
		t.Error("Exists disagrees with the registrations")
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	Register("registry-test", factory("registry-test"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("registry-test", factory("registry-test"))
}
