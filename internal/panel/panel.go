// Package panel assembles the bar: widgets per the config, popovers in the
// registry, and the event dispatcher feeding the stores.
package panel

import (
	"fmt"

	"github.com/atomicstack/niri-panel/internal/config"
	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/niri"
	"github.com/atomicstack/niri-panel/internal/registry"
	"github.com/atomicstack/niri-panel/internal/state"
	"github.com/atomicstack/niri-panel/internal/widgets"
)

// Deps carries the shared services widgets need.
type Deps struct {
	Client     *niri.Client
	Workspaces state.WorkspaceStore
	Windows    state.WindowStore
}

// Panel owns the bar's widgets. Fields are nil when the corresponding
// show_* flag is off.
type Panel struct {
	cfg      config.PanelConfig
	keyboard *KeyboardManager

	workspaces *widgets.Workspaces
	launcher   *widgets.Launcher
	clock      *widgets.Clock
	network    *widgets.Network
	git        *widgets.Git
}

// Build constructs one widget per enabled show_* flag and registers each
// popover under its canonical name. Must run on the UI context.
func Build(cfg config.PanelConfig, reg *registry.Registry, deps Deps) *Panel {
	p := &Panel{cfg: cfg, keyboard: NewKeyboardManager(nil)}

	var names []string
	register := func(w registry.Widget, pop *widgets.Popover) {
		pop.OnShow(p.keyboard.PopoverShown)
		pop.OnHide(p.keyboard.PopoverHidden)
		reg.Register(w, pop)
		names = append(names, w.String())
	}

	if cfg.ShowLauncher {
		p.launcher = widgets.NewLauncher(cfg.LauncherIcon)
		register(registry.Launcher, p.launcher.Popover)
	}
	if cfg.ShowPlaces {
		register(registry.Places, widgets.NewPlaces().Popover)
	}
	if cfg.ShowServers {
		register(registry.Servers, widgets.NewServers().Popover)
	}
	if cfg.ShowSearch {
		register(registry.Search, widgets.NewSearch().Popover)
	}
	if cfg.ShowGit {
		p.git = widgets.NewGit(cfg.Git)
		register(registry.Git, p.git.Popover)
	}
	if cfg.ShowSecrets {
		register(registry.Secrets, widgets.NewSecrets().Popover)
	}
	if cfg.ShowSound {
		register(registry.Sound, widgets.NewSound().Popover)
	}
	if cfg.ShowBluetooth {
		register(registry.Bluetooth, widgets.NewBluetooth().Popover)
	}
	if cfg.ShowNetwork {
		p.network = widgets.NewNetwork()
		p.network.OnShow(func() {
			if err := p.network.Refresh(); err != nil {
				logging.Error(fmt.Errorf("refresh network status: %w", err))
			}
		})
		register(registry.Network, p.network.Popover)
	}
	if cfg.ShowBattery {
		register(registry.Battery, widgets.NewBattery().Popover)
	}
	if cfg.ShowClock {
		p.clock = widgets.NewClock(cfg.ClockFormat)
		register(registry.Clock, p.clock.Popover)
	}
	if cfg.ShowPower {
		register(registry.Power, widgets.NewPower().Popover)
	}

	if cfg.ShowWorkspaces {
		p.workspaces = widgets.NewWorkspaces(deps.Workspaces, deps.Windows, deps.Client)
	}

	events.Panel.Build(names)
	return p
}

// Keyboard returns the keyboard mode manager.
func (p *Panel) Keyboard() *KeyboardManager {
	return p.keyboard
}

// Config returns the configuration the panel was built from.
func (p *Panel) Config() config.PanelConfig {
	return p.cfg
}

// Workspaces returns the workspace switcher, or nil when disabled.
func (p *Panel) Workspaces() *widgets.Workspaces {
	return p.workspaces
}

// Clock returns the clock widget, or nil when disabled.
func (p *Panel) Clock() *widgets.Clock {
	return p.clock
}

// Network returns the network widget, or nil when disabled.
func (p *Panel) Network() *widgets.Network {
	return p.network
}

// Git returns the git widget, or nil when disabled.
func (p *Panel) Git() *widgets.Git {
	return p.git
}

// Launcher returns the launcher widget, or nil when disabled.
func (p *Panel) Launcher() *widgets.Launcher {
	return p.launcher
}
