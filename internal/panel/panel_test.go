package panel

import (
	"testing"

	"github.com/atomicstack/niri-panel/internal/config"
	"github.com/atomicstack/niri-panel/internal/niri"
	"github.com/atomicstack/niri-panel/internal/registry"
	"github.com/atomicstack/niri-panel/internal/state"
)

func testDeps() Deps {
	return Deps{
		Client:     &niri.Client{},
		Workspaces: state.NewWorkspaceStore(),
		Windows:    state.NewWindowStore(),
	}
}

func TestBuildRegistersEnabledPopovers(t *testing.T) {
	reg := registry.New()
	Build(config.DefaultPanel(), reg, testDeps())

	names := reg.Names()
	if len(names) != len(registry.WidgetNames()) {
		t.Fatalf("expected every widget registered, got %d: %v", len(names), names)
	}
	for _, want := range []string{"clock", "launcher", "power", "git"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q among registered popovers: %v", want, names)
		}
	}
}

func TestBuildHonorsShowFlags(t *testing.T) {
	cfg := config.DefaultPanel()
	cfg.ShowClock = false
	cfg.ShowGit = false

	reg := registry.New()
	p := Build(cfg, reg, testDeps())

	for _, name := range reg.Names() {
		if name == "clock" || name == "git" {
			t.Fatalf("expected %q to stay unregistered", name)
		}
	}
	if p.Clock() != nil || p.Git() != nil {
		t.Fatal("expected disabled widgets to be nil")
	}
	if p.Launcher() == nil {
		t.Fatal("expected the launcher to be built")
	}
}

func TestPopoverVisibilityDrivesKeyboardMode(t *testing.T) {
	reg := registry.New()
	p := Build(config.DefaultPanel(), reg, testDeps())
	keyboard := p.Keyboard()

	reg.Show("clock")
	if keyboard.Mode() != KeyboardOnDemand || keyboard.Active() != 1 {
		t.Fatalf("expected on-demand after show, got %v/%d", keyboard.Mode(), keyboard.Active())
	}

	// Showing an already visible popover must not inflate the count.
	reg.Show("clock")
	if keyboard.Active() != 1 {
		t.Fatalf("expected idempotent show, got %d active", keyboard.Active())
	}

	reg.Show("battery")
	if keyboard.Active() != 2 {
		t.Fatalf("expected two active popovers, got %d", keyboard.Active())
	}

	reg.Hide("clock")
	reg.Hide("battery")
	if keyboard.Mode() != KeyboardNone || keyboard.Active() != 0 {
		t.Fatalf("expected none after hiding all, got %v/%d", keyboard.Mode(), keyboard.Active())
	}
}

func TestBuildWiresWorkspaceSwitcher(t *testing.T) {
	p := Build(config.DefaultPanel(), registry.New(), testDeps())
	if p.Workspaces() == nil {
		t.Fatal("expected the workspace switcher to be built")
	}
	if got := p.Workspaces().Current(); len(got) != 4 {
		t.Fatalf("expected the default workspace set, got %d", len(got))
	}

	cfg := config.DefaultPanel()
	cfg.ShowWorkspaces = false
	if p := Build(cfg, registry.New(), testDeps()); p.Workspaces() != nil {
		t.Fatal("expected no workspace switcher when disabled")
	}
}
