package state

import (
	"sort"

	"github.com/atomicstack/niri-panel/internal/niri"
)

// WorkspaceStore holds the latest workspace snapshot. Stores are only ever
// touched from the UI context, so they carry no locks.
type WorkspaceStore interface {
	All() []niri.WorkspaceInfo
	Update([]niri.WorkspaceInfo)
	Activate(id uint64, focused bool)
	ByID(id uint64) (niri.WorkspaceInfo, bool)
	Focused() (niri.WorkspaceInfo, bool)
	ActiveOnOutput(output string) (niri.WorkspaceInfo, bool)
}

type workspaceStore struct {
	workspaces []niri.WorkspaceInfo
}

func NewWorkspaceStore() WorkspaceStore {
	return &workspaceStore{workspaces: DefaultWorkspaces()}
}

// DefaultWorkspaces is the placeholder set shown until the compositor
// reports real data: four workspaces on the built-in display, the first one
// active and focused.
func DefaultWorkspaces() []niri.WorkspaceInfo {
	defaults := make([]niri.WorkspaceInfo, 0, 4)
	for i := uint64(1); i <= 4; i++ {
		defaults = append(defaults, niri.WorkspaceInfo{
			ID:        i,
			Idx:       uint32(i),
			Output:    "eDP-1",
			IsActive:  i == 1,
			IsFocused: i == 1,
		})
	}
	return defaults
}

func (s *workspaceStore) All() []niri.WorkspaceInfo {
	return cloneWorkspaces(s.workspaces)
}

// Update replaces the snapshot wholesale, sorted by id. An empty set means
// the compositor gave us nothing to work with, so the defaults go back in.
func (s *workspaceStore) Update(workspaces []niri.WorkspaceInfo) {
	if len(workspaces) == 0 {
		s.workspaces = DefaultWorkspaces()
		return
	}
	s.workspaces = cloneWorkspaces(workspaces)
	sort.Slice(s.workspaces, func(i, j int) bool { return s.workspaces[i].ID < s.workspaces[j].ID })
}

// Activate marks the workspace active on its output. When focused is set it
// also becomes the focused workspace, unfocusing every other one. Unknown
// ids are ignored.
func (s *workspaceStore) Activate(id uint64, focused bool) {
	var output string
	found := false
	for _, ws := range s.workspaces {
		if ws.ID == id {
			output = ws.Output
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i := range s.workspaces {
		ws := &s.workspaces[i]
		if ws.Output == output {
			ws.IsActive = ws.ID == id
		}
		if focused {
			ws.IsFocused = ws.ID == id
		}
	}
}

func (s *workspaceStore) ByID(id uint64) (niri.WorkspaceInfo, bool) {
	for _, ws := range s.workspaces {
		if ws.ID == id {
			return ws, true
		}
	}
	return niri.WorkspaceInfo{}, false
}

func (s *workspaceStore) Focused() (niri.WorkspaceInfo, bool) {
	for _, ws := range s.workspaces {
		if ws.IsFocused {
			return ws, true
		}
	}
	return niri.WorkspaceInfo{}, false
}

func (s *workspaceStore) ActiveOnOutput(output string) (niri.WorkspaceInfo, bool) {
	for _, ws := range s.workspaces {
		if ws.Output == output && ws.IsActive {
			return ws, true
		}
	}
	return niri.WorkspaceInfo{}, false
}

func cloneWorkspaces(workspaces []niri.WorkspaceInfo) []niri.WorkspaceInfo {
	if len(workspaces) == 0 {
		return nil
	}
	dup := make([]niri.WorkspaceInfo, len(workspaces))
	copy(dup, workspaces)
	return dup
}
