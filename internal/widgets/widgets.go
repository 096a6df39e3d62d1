package widgets

import "github.com/atomicstack/niri-panel/internal/registry"

// The widgets below are plain popover owners. Their surfaces carry no state
// the daemon needs to track.

// Launcher owns the application grid popover.
type Launcher struct {
	*Popover
	icon string
}

func NewLauncher(icon string) *Launcher {
	return &Launcher{Popover: NewPopover(registry.Launcher), icon: icon}
}

// Icon returns the themed icon name for the bar button.
func (l *Launcher) Icon() string {
	return l.icon
}

type Places struct{ *Popover }

func NewPlaces() *Places { return &Places{NewPopover(registry.Places)} }

type Servers struct{ *Popover }

func NewServers() *Servers { return &Servers{NewPopover(registry.Servers)} }

type Search struct{ *Popover }

func NewSearch() *Search { return &Search{NewPopover(registry.Search)} }

type Secrets struct{ *Popover }

func NewSecrets() *Secrets { return &Secrets{NewPopover(registry.Secrets)} }

type Sound struct{ *Popover }

func NewSound() *Sound { return &Sound{NewPopover(registry.Sound)} }

type Bluetooth struct{ *Popover }

func NewBluetooth() *Bluetooth { return &Bluetooth{NewPopover(registry.Bluetooth)} }

type Battery struct{ *Popover }

func NewBattery() *Battery { return &Battery{NewPopover(registry.Battery)} }

type Power struct{ *Popover }

func NewPower() *Power { return &Power{NewPopover(registry.Power)} }
