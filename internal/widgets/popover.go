// Package widgets holds the popover owners behind the panel's bar modules.
// A widget is a Popover plus whatever state its surface needs; the surfaces
// themselves live behind the show and hide hooks.
package widgets

import (
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/registry"
)

// Popover tracks visibility for one widget surface. Popup and Popdown are
// idempotent: hooks fire only on actual transitions. UI context only.
type Popover struct {
	widget  registry.Widget
	visible bool
	onShow  []func()
	onHide  []func()
}

func NewPopover(w registry.Widget) *Popover {
	return &Popover{widget: w}
}

// Widget returns which widget this popover belongs to.
func (p *Popover) Widget() registry.Widget {
	return p.widget
}

// Visible reports whether the popover is currently shown.
func (p *Popover) Visible() bool {
	return p.visible
}

// OnShow registers a hook that runs when the popover actually opens.
func (p *Popover) OnShow(fn func()) {
	p.onShow = append(p.onShow, fn)
}

// OnHide registers a hook that runs when the popover actually closes.
func (p *Popover) OnHide(fn func()) {
	p.onHide = append(p.onHide, fn)
}

func (p *Popover) Popup() {
	if p.visible {
		return
	}
	p.visible = true
	events.Widget.Shown(p.widget.String())
	for _, fn := range p.onShow {
		fn()
	}
}

func (p *Popover) Popdown() {
	if !p.visible {
		return
	}
	p.visible = false
	events.Widget.Hidden(p.widget.String())
	for _, fn := range p.onHide {
		fn()
	}
}
