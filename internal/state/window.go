package state

import (
	"sort"

	"github.com/atomicstack/niri-panel/internal/niri"
)

// WindowStore holds the latest window snapshot.
type WindowStore interface {
	All() []niri.WindowInfo
	Update([]niri.WindowInfo)
	SetFocused(id uint64)
	ByID(id uint64) (niri.WindowInfo, bool)
	Focused() (niri.WindowInfo, bool)
	ForWorkspace(workspaceID uint64) []niri.WindowInfo
}

type windowStore struct {
	windows []niri.WindowInfo
}

func NewWindowStore() WindowStore {
	return &windowStore{}
}

func (s *windowStore) All() []niri.WindowInfo {
	return cloneWindows(s.windows)
}

// Update replaces the snapshot wholesale, sorted by id.
func (s *windowStore) Update(windows []niri.WindowInfo) {
	s.windows = cloneWindows(windows)
	sort.Slice(s.windows, func(i, j int) bool { return s.windows[i].ID < s.windows[j].ID })
}

// SetFocused moves the focus flag to the given window. Focus moving to a
// window we have not seen yet still clears the old one.
func (s *windowStore) SetFocused(id uint64) {
	for i := range s.windows {
		s.windows[i].IsFocused = s.windows[i].ID == id
	}
}

func (s *windowStore) ByID(id uint64) (niri.WindowInfo, bool) {
	for _, win := range s.windows {
		if win.ID == id {
			return win, true
		}
	}
	return niri.WindowInfo{}, false
}

func (s *windowStore) Focused() (niri.WindowInfo, bool) {
	for _, win := range s.windows {
		if win.IsFocused {
			return win, true
		}
	}
	return niri.WindowInfo{}, false
}

func (s *windowStore) ForWorkspace(workspaceID uint64) []niri.WindowInfo {
	var matching []niri.WindowInfo
	for _, win := range s.windows {
		if win.WorkspaceID == workspaceID {
			matching = append(matching, win)
		}
	}
	return matching
}

func cloneWindows(windows []niri.WindowInfo) []niri.WindowInfo {
	if len(windows) == 0 {
		return nil
	}
	dup := make([]niri.WindowInfo, len(windows))
	copy(dup, windows)
	return dup
}
