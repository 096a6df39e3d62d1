// Package registry maps widget names to their live popover handles. The
// registry and every handle it holds belong to the UI context: construct it
// once at startup, pass it where it is needed, and touch it only from
// callbacks running on the main loop.
package registry

import (
	"sort"

	"github.com/atomicstack/niri-panel/internal/logging/events"
)

// Popover is the handle a widget registers for remote control. Implementations
// are owned by the UI context; Popup and Popdown must only be invoked there.
type Popover interface {
	Popup()
	Popdown()
}

// Registry resolves canonical widget names to popover handles.
type Registry struct {
	popovers map[string]Popover
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{popovers: make(map[string]Popover)}
}

// Register stores the popover under the widget's canonical name, overwriting
// any previous handle. UI context only.
func (r *Registry) Register(w Widget, p Popover) {
	r.popovers[w.String()] = p
	events.Panel.Register(w.String())
}

// Show pops up the named popover. Reports whether the name was registered;
// an unknown name has no side effect.
func (r *Registry) Show(name string) bool {
	p, ok := r.popovers[name]
	if !ok {
		return false
	}
	p.Popup()
	return true
}

// Hide pops down the named popover. Reports whether the name was registered.
func (r *Registry) Hide(name string) bool {
	p, ok := r.popovers[name]
	if !ok {
		return false
	}
	p.Popdown()
	return true
}

// Reset drops every registration. Used when the panel is rebuilt after a
// config reload so widgets disabled by the new config stop resolving.
// UI context only.
func (r *Registry) Reset() {
	r.popovers = make(map[string]Popover)
}

// Names returns the registered names, sorted for stable logging.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.popovers))
	for name := range r.popovers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CanonicalName returns the wire form of a widget. It stays in sync with the
// names the control protocol accepts.
func CanonicalName(w Widget) string {
	return w.String()
}
