package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/niri-panel/internal/logging/events"
)

// PanelConfig is the user-facing TOML document controlling the panel.
type PanelConfig struct {
	Height         int       `toml:"height"`
	ShowWorkspaces bool      `toml:"show_workspaces"`
	ShowKeyboard   bool      `toml:"show_keyboard"`
	ShowLauncher   bool      `toml:"show_launcher"`
	ShowPlaces     bool      `toml:"show_places"`
	ShowServers    bool      `toml:"show_servers"`
	ShowSearch     bool      `toml:"show_search"`
	ShowGit        bool      `toml:"show_git"`
	ShowSecrets    bool      `toml:"show_secrets"`
	ShowSound      bool      `toml:"show_sound"`
	ShowBluetooth  bool      `toml:"show_bluetooth"`
	ShowNetwork    bool      `toml:"show_network"`
	ShowBattery    bool      `toml:"show_battery"`
	ShowClock      bool      `toml:"show_clock"`
	ShowPower      bool      `toml:"show_power"`
	ClockFormat    string    `toml:"clock_format"`
	LauncherIcon   string    `toml:"launcher_icon"`
	Git            GitConfig `toml:"git"`
}

type GitConfig struct {
	Repositories []Repository `toml:"repositories"`
	Services     []GitService `toml:"services"`
}

// Repository is a tracked git checkout shown in the git popover.
type Repository struct {
	Name    string `toml:"name"`
	Path    string `toml:"path"`
	Service string `toml:"service"`
	URL     string `toml:"url"`
}

// GitService maps a repository to web URLs. %s is replaced with the
// repository name.
type GitService struct {
	Name          string `toml:"name"`
	URLPattern    string `toml:"url_pattern"`
	IssuesPattern string `toml:"issues_pattern"`
}

const (
	defaultHeight       = 32
	defaultClockFormat  = "%a %b %e %l:%M %p"
	defaultLauncherIcon = "view-app-grid-symbolic"
)

func defaultServices() []GitService {
	return []GitService{
		{
			Name:          "github",
			URLPattern:    "https://github.com/%s",
			IssuesPattern: "https://github.com/%s/issues",
		},
		{
			Name:          "gitlab",
			URLPattern:    "https://gitlab.com/%s",
			IssuesPattern: "https://gitlab.com/%s/-/issues",
		},
	}
}

// DefaultPanel returns the configuration written on first run.
func DefaultPanel() PanelConfig {
	return PanelConfig{
		Height:         defaultHeight,
		ShowWorkspaces: true,
		ShowKeyboard:   true,
		ShowLauncher:   true,
		ShowPlaces:     true,
		ShowServers:    true,
		ShowSearch:     true,
		ShowGit:        true,
		ShowSecrets:    true,
		ShowSound:      true,
		ShowBluetooth:  true,
		ShowNetwork:    true,
		ShowBattery:    true,
		ShowClock:      true,
		ShowPower:      true,
		ClockFormat:    defaultClockFormat,
		LauncherIcon:   defaultLauncherIcon,
		Git: GitConfig{
			Services: defaultServices(),
		},
	}
}

// DefaultPanelPath resolves the config file location from the XDG
// environment.
func DefaultPanelPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "niri-panel", "config.toml")
}

// LoadPanel reads the config file, creating it with defaults when absent.
// Decoding starts from the defaults, so unset keys keep their default
// values. Path-like fields have environment variables expanded.
func LoadPanel(path string) (PanelConfig, error) {
	if path == "" {
		path = DefaultPanelPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return PanelConfig{}, fmt.Errorf("create config directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultPanel()
		if err := SavePanel(path, cfg); err != nil {
			return PanelConfig{}, err
		}
		events.App.ConfigLoaded(path)
		return cfg, nil
	}
	if err != nil {
		return PanelConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultPanel()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return PanelConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	normalizePanel(&cfg)
	events.App.ConfigLoaded(path)
	return cfg, nil
}

// SavePanel writes the config file.
func SavePanel(path string, cfg PanelConfig) error {
	if path == "" {
		path = DefaultPanelPath()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func normalizePanel(cfg *PanelConfig) {
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.ClockFormat == "" {
		cfg.ClockFormat = defaultClockFormat
	}
	if cfg.LauncherIcon == "" {
		cfg.LauncherIcon = defaultLauncherIcon
	}
	if len(cfg.Git.Services) == 0 {
		cfg.Git.Services = defaultServices()
	}
	for i := range cfg.Git.Repositories {
		cfg.Git.Repositories[i].Path = os.ExpandEnv(cfg.Git.Repositories[i].Path)
	}
}
