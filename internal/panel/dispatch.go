package panel

import (
	"fmt"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/niri"
	"github.com/atomicstack/niri-panel/internal/notify"
	"github.com/atomicstack/niri-panel/internal/state"
)

// Dispatcher routes compositor events into the stores and turns urgency
// edges into desktop notifications. UI context only.
type Dispatcher struct {
	workspaces state.WorkspaceStore
	windows    state.WindowStore
	notifier   notify.Notifier

	// Latches suppress repeat notifications while something stays urgent.
	// The latch releases when urgency clears or the subject disappears.
	urgentWorkspaces map[uint64]bool
	urgentWindows    map[uint64]bool

	layouts       []string
	currentLayout int
	overviewOpen  bool
}

func NewDispatcher(workspaces state.WorkspaceStore, windows state.WindowStore, notifier notify.Notifier) *Dispatcher {
	return &Dispatcher{
		workspaces:       workspaces,
		windows:          windows,
		notifier:         notifier,
		urgentWorkspaces: make(map[uint64]bool),
		urgentWindows:    make(map[uint64]bool),
		currentLayout:    -1,
	}
}

// Handle applies one compositor event.
func (d *Dispatcher) Handle(ev niri.Event) {
	switch e := ev.(type) {
	case *niri.WorkspacesChanged:
		d.workspaces.Update(e.Workspaces)
		d.noteUrgentWorkspaces(e.Workspaces)
	case *niri.WindowsChanged:
		d.windows.Update(e.Windows)
		d.noteUrgentWindows(e.Windows)
	case *niri.WorkspaceActivated:
		d.workspaces.Activate(e.ID, e.Focused)
	case *niri.WindowFocusChanged:
		d.windows.SetFocused(e.ID)
	case *niri.KeyboardLayoutsChanged:
		d.layouts = append([]string(nil), e.Names...)
		d.currentLayout = e.CurrentIdx
	case *niri.OverviewOpenedOrClosed:
		d.overviewOpen = e.IsOpen
	case *niri.Unknown:
		// Already traced by the stream; nothing to update.
	}
}

// CurrentLayout returns the active keyboard layout name.
func (d *Dispatcher) CurrentLayout() (string, bool) {
	if d.currentLayout < 0 || d.currentLayout >= len(d.layouts) {
		return "", false
	}
	return d.layouts[d.currentLayout], true
}

// Layouts returns the known keyboard layout names.
func (d *Dispatcher) Layouts() []string {
	return append([]string(nil), d.layouts...)
}

// OverviewOpen reports whether the compositor overview is showing.
func (d *Dispatcher) OverviewOpen() bool {
	return d.overviewOpen
}

func (d *Dispatcher) noteUrgentWorkspaces(workspaces []niri.WorkspaceInfo) {
	seen := make(map[uint64]bool, len(workspaces))
	for _, workspace := range workspaces {
		seen[workspace.ID] = true
		if !workspace.IsUrgent {
			delete(d.urgentWorkspaces, workspace.ID)
			continue
		}
		if d.urgentWorkspaces[workspace.ID] {
			continue
		}
		d.urgentWorkspaces[workspace.ID] = true
		label := fmt.Sprintf("Workspace %d", workspace.Idx)
		if workspace.Name != nil {
			label = *workspace.Name
		}
		events.Panel.Urgent("workspace", workspace.ID, label)
		d.sendNotification("Workspace needs attention", label, notify.UrgencyNormal)
	}
	for id := range d.urgentWorkspaces {
		if !seen[id] {
			delete(d.urgentWorkspaces, id)
		}
	}
}

func (d *Dispatcher) noteUrgentWindows(windows []niri.WindowInfo) {
	seen := make(map[uint64]bool, len(windows))
	for _, window := range windows {
		seen[window.ID] = true
		if !window.IsUrgent {
			delete(d.urgentWindows, window.ID)
			continue
		}
		if d.urgentWindows[window.ID] {
			continue
		}
		d.urgentWindows[window.ID] = true
		events.Panel.Urgent("window", window.ID, window.Title)
		d.sendNotification("Window needs attention", window.Title, notify.UrgencyNormal)
	}
	for id := range d.urgentWindows {
		if !seen[id] {
			delete(d.urgentWindows, id)
		}
	}
}

func (d *Dispatcher) sendNotification(summary, body string, urgency notify.Urgency) {
	if err := d.notifier.Notify(summary, body, urgency); err != nil {
		logging.Error(fmt.Errorf("notify: %w", err))
	}
}
