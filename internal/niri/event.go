// Package niri speaks to the niri compositor: it parses the msg event stream
// into typed events, supervises the stream subprocess, and wraps the one-shot
// msg queries and actions the widgets use.
package niri

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Event is one decoded line of the niri event stream.
type Event interface {
	Name() string
}

// WorkspaceInfo is an immutable snapshot of one workspace. Idx is the 1-based
// display position assigned by the compositor; it is carried through, never
// re-derived.
type WorkspaceInfo struct {
	ID             uint64
	Idx            uint32
	Name           *string
	Output         string
	IsUrgent       bool
	IsActive       bool
	IsFocused      bool
	ActiveWindowID *uint64
}

// WindowInfo is an immutable snapshot of one window. Workspace links are left
// to consumers to resolve.
type WindowInfo struct {
	ID          uint64
	Title       string
	AppID       *string
	PID         uint64
	WorkspaceID uint64
	IsFocused   bool
	IsFloating  bool
	IsUrgent    bool
}

// The workspace configuration changed; the list replaces all prior state.
type WorkspacesChanged struct {
	Workspaces []WorkspaceInfo
}

// The window configuration changed; the list replaces all prior state.
type WindowsChanged struct {
	Windows []WindowInfo
}

// A workspace became the active workspace on its output.
type WorkspaceActivated struct {
	ID      uint64
	Focused bool
}

// Window focus moved to the window with this id.
type WindowFocusChanged struct {
	ID uint64
}

// The configured keyboard layouts changed.
type KeyboardLayoutsChanged struct {
	Names      []string
	CurrentIdx int
}

// The overview was opened or closed.
type OverviewOpenedOrClosed struct {
	IsOpen bool
}

// Unknown preserves event kinds this build does not understand, so consumers
// can still observe them.
type Unknown struct {
	Kind string
	Raw  json.RawMessage
}

func (*WorkspacesChanged) Name() string      { return "WorkspacesChanged" }
func (*WindowsChanged) Name() string         { return "WindowsChanged" }
func (*WorkspaceActivated) Name() string     { return "WorkspaceActivated" }
func (*WindowFocusChanged) Name() string     { return "WindowFocusChanged" }
func (*KeyboardLayoutsChanged) Name() string { return "KeyboardLayoutsChanged" }
func (*OverviewOpenedOrClosed) Name() string { return "OverviewOpenedOrClosed" }
func (*Unknown) Name() string                { return "Unknown" }

// ParseEvent decodes one line of the event stream. Lines that are not JSON,
// not a single-key object, or that lack a required field yield an error
// naming what was wrong; the caller drops the line and keeps reading.
// Unrecognized event kinds are not errors: they come back as *Unknown.
func ParseEvent(data []byte) (Event, error) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(outer) != 1 {
		return nil, fmt.Errorf("expected a single-key event object, got %d keys", len(outer))
	}

	var kind string
	var payload json.RawMessage
	for k, v := range outer {
		kind, payload = k, v
	}

	switch kind {
	case "WorkspacesChanged":
		return parseWorkspacesChanged(payload)
	case "WindowsChanged":
		return parseWindowsChanged(payload)
	case "WorkspaceActivated":
		return parseWorkspaceActivated(payload)
	case "WindowFocusChanged":
		return parseWindowFocusChanged(payload)
	case "KeyboardLayoutsChanged":
		return parseKeyboardLayoutsChanged(payload)
	case "OverviewOpenedOrClosed":
		return parseOverviewOpenedOrClosed(payload)
	default:
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		return &Unknown{Kind: kind, Raw: raw}, nil
	}
}

type workspacePayload struct {
	ID             *uint64 `json:"id"`
	Idx            *uint64 `json:"idx"`
	Name           *string `json:"name"`
	Output         *string `json:"output"`
	IsUrgent       *bool   `json:"is_urgent"`
	IsActive       *bool   `json:"is_active"`
	IsFocused      *bool   `json:"is_focused"`
	ActiveWindowID *uint64 `json:"active_window_id"`
}

func (p workspacePayload) info() (WorkspaceInfo, error) {
	switch {
	case p.ID == nil:
		return WorkspaceInfo{}, errors.New("missing id")
	case p.Idx == nil:
		return WorkspaceInfo{}, errors.New("missing idx")
	case p.Output == nil:
		return WorkspaceInfo{}, errors.New("missing output")
	case p.IsUrgent == nil:
		return WorkspaceInfo{}, errors.New("missing is_urgent")
	case p.IsActive == nil:
		return WorkspaceInfo{}, errors.New("missing is_active")
	case p.IsFocused == nil:
		return WorkspaceInfo{}, errors.New("missing is_focused")
	}
	if *p.Idx > math.MaxUint32 {
		return WorkspaceInfo{}, fmt.Errorf("idx %d out of range", *p.Idx)
	}
	return WorkspaceInfo{
		ID:             *p.ID,
		Idx:            uint32(*p.Idx),
		Name:           p.Name,
		Output:         *p.Output,
		IsUrgent:       *p.IsUrgent,
		IsActive:       *p.IsActive,
		IsFocused:      *p.IsFocused,
		ActiveWindowID: p.ActiveWindowID,
	}, nil
}

func parseWorkspacesChanged(payload json.RawMessage) (Event, error) {
	var aux struct {
		Workspaces *[]workspacePayload `json:"workspaces"`
	}
	if err := json.Unmarshal(payload, &aux); err != nil {
		return nil, fmt.Errorf("WorkspacesChanged: %w", err)
	}
	if aux.Workspaces == nil {
		return nil, errors.New("WorkspacesChanged: missing workspaces")
	}
	ev := &WorkspacesChanged{Workspaces: make([]WorkspaceInfo, 0, len(*aux.Workspaces))}
	for i, wp := range *aux.Workspaces {
		info, err := wp.info()
		if err != nil {
			return nil, fmt.Errorf("WorkspacesChanged: workspaces[%d]: %w", i, err)
		}
		ev.Workspaces = append(ev.Workspaces, info)
	}
	return ev, nil
}

type windowPayload struct {
	ID          *uint64 `json:"id"`
	Title       *string `json:"title"`
	AppID       *string `json:"app_id"`
	PID         *uint64 `json:"pid"`
	WorkspaceID *uint64 `json:"workspace_id"`
	IsFocused   *bool   `json:"is_focused"`
	IsFloating  *bool   `json:"is_floating"`
	IsUrgent    *bool   `json:"is_urgent"`
}

func (p windowPayload) info() (WindowInfo, error) {
	switch {
	case p.ID == nil:
		return WindowInfo{}, errors.New("missing id")
	case p.Title == nil:
		return WindowInfo{}, errors.New("missing title")
	case p.PID == nil:
		return WindowInfo{}, errors.New("missing pid")
	case p.WorkspaceID == nil:
		return WindowInfo{}, errors.New("missing workspace_id")
	case p.IsFocused == nil:
		return WindowInfo{}, errors.New("missing is_focused")
	case p.IsFloating == nil:
		return WindowInfo{}, errors.New("missing is_floating")
	case p.IsUrgent == nil:
		return WindowInfo{}, errors.New("missing is_urgent")
	}
	return WindowInfo{
		ID:          *p.ID,
		Title:       *p.Title,
		AppID:       p.AppID,
		PID:         *p.PID,
		WorkspaceID: *p.WorkspaceID,
		IsFocused:   *p.IsFocused,
		IsFloating:  *p.IsFloating,
		IsUrgent:    *p.IsUrgent,
	}, nil
}

func parseWindowsChanged(payload json.RawMessage) (Event, error) {
	var aux struct {
		Windows *[]windowPayload `json:"windows"`
	}
	if err := json.Unmarshal(payload, &aux); err != nil {
		return nil, fmt.Errorf("WindowsChanged: %w", err)
	}
	if aux.Windows == nil {
		return nil, errors.New("WindowsChanged: missing windows")
	}
	ev := &WindowsChanged{Windows: make([]WindowInfo, 0, len(*aux.Windows))}
	for i, wp := range *aux.Windows {
		info, err := wp.info()
		if err != nil {
			return nil, fmt.Errorf("WindowsChanged: windows[%d]: %w", i, err)
		}
		ev.Windows = append(ev.Windows, info)
	}
	return ev, nil
}

func parseWorkspaceActivated(payload json.RawMessage) (Event, error) {
	var aux struct {
		ID      *uint64 `json:"id"`
		Focused *bool   `json:"focused"`
	}
	if err := json.Unmarshal(payload, &aux); err != nil {
		return nil, fmt.Errorf("WorkspaceActivated: %w", err)
	}
	if aux.ID == nil {
		return nil, errors.New("WorkspaceActivated: missing id")
	}
	if aux.Focused == nil {
		return nil, errors.New("WorkspaceActivated: missing focused")
	}
	return &WorkspaceActivated{ID: *aux.ID, Focused: *aux.Focused}, nil
}

func parseWindowFocusChanged(payload json.RawMessage) (Event, error) {
	var aux struct {
		ID *uint64 `json:"id"`
	}
	if err := json.Unmarshal(payload, &aux); err != nil {
		return nil, fmt.Errorf("WindowFocusChanged: %w", err)
	}
	if aux.ID == nil {
		return nil, errors.New("WindowFocusChanged: missing id")
	}
	return &WindowFocusChanged{ID: *aux.ID}, nil
}

func parseKeyboardLayoutsChanged(payload json.RawMessage) (Event, error) {
	var aux struct {
		KeyboardLayouts *struct {
			Names      *[]interface{} `json:"names"`
			CurrentIdx *uint64        `json:"current_idx"`
		} `json:"keyboard_layouts"`
	}
	if err := json.Unmarshal(payload, &aux); err != nil {
		return nil, fmt.Errorf("KeyboardLayoutsChanged: %w", err)
	}
	if aux.KeyboardLayouts == nil {
		return nil, errors.New("KeyboardLayoutsChanged: missing keyboard_layouts")
	}
	if aux.KeyboardLayouts.Names == nil {
		return nil, errors.New("KeyboardLayoutsChanged: missing keyboard_layouts.names")
	}
	if aux.KeyboardLayouts.CurrentIdx == nil {
		return nil, errors.New("KeyboardLayoutsChanged: missing keyboard_layouts.current_idx")
	}
	idx := *aux.KeyboardLayouts.CurrentIdx
	if idx > math.MaxInt {
		return nil, fmt.Errorf("KeyboardLayoutsChanged: current_idx %d out of range", idx)
	}
	// Non-string entries are skipped rather than failing the event.
	names := make([]string, 0, len(*aux.KeyboardLayouts.Names))
	for _, n := range *aux.KeyboardLayouts.Names {
		if s, ok := n.(string); ok {
			names = append(names, s)
		}
	}
	return &KeyboardLayoutsChanged{Names: names, CurrentIdx: int(idx)}, nil
}

func parseOverviewOpenedOrClosed(payload json.RawMessage) (Event, error) {
	var aux struct {
		IsOpen *bool `json:"is_open"`
	}
	if err := json.Unmarshal(payload, &aux); err != nil {
		return nil, fmt.Errorf("OverviewOpenedOrClosed: %w", err)
	}
	if aux.IsOpen == nil {
		return nil, errors.New("OverviewOpenedOrClosed: missing is_open")
	}
	return &OverviewOpenedOrClosed{IsOpen: *aux.IsOpen}, nil
}
