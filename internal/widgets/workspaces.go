package widgets

import (
	"context"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/niri"
	"github.com/atomicstack/niri-panel/internal/state"
)

// Workspaces is the bar's workspace switcher. It reads the stores and turns
// clicks into compositor actions. Actions run fire-and-forget on their own
// goroutine so a slow compositor never stalls the UI context; failures are
// logged.
type Workspaces struct {
	workspaces state.WorkspaceStore
	windows    state.WindowStore
	client     *niri.Client
}

func NewWorkspaces(workspaces state.WorkspaceStore, windows state.WindowStore, client *niri.Client) *Workspaces {
	return &Workspaces{workspaces: workspaces, windows: windows, client: client}
}

// Current returns the latest workspace snapshot.
func (w *Workspaces) Current() []niri.WorkspaceInfo {
	return w.workspaces.All()
}

// WindowsOn returns the windows on the given workspace.
func (w *Workspaces) WindowsOn(workspaceID uint64) []niri.WindowInfo {
	return w.windows.ForWorkspace(workspaceID)
}

// Switch focuses the workspace at the given display position.
func (w *Workspaces) Switch(idx uint32) {
	events.Widget.Action("workspaces", "switch")
	go func() {
		if err := w.client.FocusWorkspace(context.Background(), idx); err != nil {
			logging.Error(err)
		}
	}()
}

// FocusWindow focuses the given window.
func (w *Workspaces) FocusWindow(id uint64) {
	events.Widget.Action("workspaces", "focus-window")
	go func() {
		if err := w.client.FocusWindow(context.Background(), id); err != nil {
			logging.Error(err)
		}
	}()
}

// CloseWindow closes the given window.
func (w *Workspaces) CloseWindow(id uint64) {
	events.Widget.Action("workspaces", "close-window")
	go func() {
		if err := w.client.CloseWindow(context.Background(), id); err != nil {
			logging.Error(err)
		}
	}()
}
