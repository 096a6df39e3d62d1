package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPanelValues(t *testing.T) {
	cfg := DefaultPanel()
	if cfg.Height != 32 {
		t.Fatalf("expected height 32, got %d", cfg.Height)
	}
	for name, show := range map[string]bool{
		"workspaces": cfg.ShowWorkspaces,
		"keyboard":   cfg.ShowKeyboard,
		"launcher":   cfg.ShowLauncher,
		"places":     cfg.ShowPlaces,
		"servers":    cfg.ShowServers,
		"search":     cfg.ShowSearch,
		"git":        cfg.ShowGit,
		"secrets":    cfg.ShowSecrets,
		"sound":      cfg.ShowSound,
		"bluetooth":  cfg.ShowBluetooth,
		"network":    cfg.ShowNetwork,
		"battery":    cfg.ShowBattery,
		"clock":      cfg.ShowClock,
		"power":      cfg.ShowPower,
	} {
		if !show {
			t.Fatalf("expected %s enabled by default", name)
		}
	}
	if cfg.ClockFormat != "%a %b %e %l:%M %p" {
		t.Fatalf("unexpected clock format %q", cfg.ClockFormat)
	}
	if cfg.LauncherIcon != "view-app-grid-symbolic" {
		t.Fatalf("unexpected launcher icon %q", cfg.LauncherIcon)
	}
	if len(cfg.Git.Services) != 2 || cfg.Git.Services[0].Name != "github" || cfg.Git.Services[1].Name != "gitlab" {
		t.Fatalf("unexpected default services: %+v", cfg.Git.Services)
	}
}

func TestLoadPanelCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "niri-panel", "config.toml")
	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Height != 32 || !cfg.ShowClock {
		t.Fatalf("expected defaults on first load, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the config file to be created: %v", err)
	}

	// The written file must decode back to the same configuration.
	again, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Height != cfg.Height || again.ClockFormat != cfg.ClockFormat {
		t.Fatalf("round trip drifted: %+v vs %+v", again, cfg)
	}
}

func TestLoadPanelKeepsDefaultsForUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "height = 40\nshow_clock = false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Height != 40 {
		t.Fatalf("expected height 40, got %d", cfg.Height)
	}
	if cfg.ShowClock {
		t.Fatal("expected show_clock to be honored")
	}
	if !cfg.ShowBattery {
		t.Fatal("expected unset show_battery to stay enabled")
	}
	if cfg.ClockFormat != "%a %b %e %l:%M %p" {
		t.Fatalf("expected default clock format, got %q", cfg.ClockFormat)
	}
	if len(cfg.Git.Services) != 2 {
		t.Fatalf("expected default services, got %+v", cfg.Git.Services)
	}
}

func TestLoadPanelGitSection(t *testing.T) {
	t.Setenv("TEST_SRC_BASE", "/home/alice/src")
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[[git.repositories]]
name = "alice/panel"
path = "$TEST_SRC_BASE/panel"
service = "github"

[[git.services]]
name = "forgejo"
url_pattern = "https://code.example.org/%s"
issues_pattern = "https://code.example.org/%s/issues"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Git.Repositories) != 1 {
		t.Fatalf("expected one repository, got %+v", cfg.Git.Repositories)
	}
	repo := cfg.Git.Repositories[0]
	if repo.Path != "/home/alice/src/panel" {
		t.Fatalf("expected env expansion in path, got %q", repo.Path)
	}
	if len(cfg.Git.Services) != 1 || cfg.Git.Services[0].Name != "forgejo" {
		t.Fatalf("expected custom services to replace defaults, got %+v", cfg.Git.Services)
	}
}

func TestLoadPanelRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("height = [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadPanel(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadPanelNormalizesZeroHeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("height = 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Height != 32 {
		t.Fatalf("expected zero height to normalize to 32, got %d", cfg.Height)
	}
}

func TestSavePanelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultPanel()
	cfg.Height = 48
	cfg.ShowSound = false
	cfg.Git.Repositories = []Repository{{Name: "alice/panel", Path: "/src/panel", Service: "github"}}

	if err := SavePanel(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadPanel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Height != 48 || loaded.ShowSound || !loaded.ShowClock {
		t.Fatalf("round trip drifted: %+v", loaded)
	}
	if len(loaded.Git.Repositories) != 1 || loaded.Git.Repositories[0].Name != "alice/panel" {
		t.Fatalf("expected the repository to survive, got %+v", loaded.Git.Repositories)
	}
}
