package niri

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/niri-panel/internal/logging"
)

// DefaultTimeout bounds how long a one-shot niri msg invocation may run.
const DefaultTimeout = 5 * time.Second

// Client runs one-shot `niri msg` queries and actions. Every invocation is
// bounded by a deadline so a wedged compositor cannot hang a caller.
type Client struct {
	Bin     string
	Timeout time.Duration
}

func (c *Client) bin() string {
	if c == nil || c.Bin == "" {
		return "niri"
	}
	return c.Bin
}

func (c *Client) deadline() time.Duration {
	if c == nil || c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c *Client) output(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.deadline())
	defer cancel()
	out, err := exec.CommandContext(ctx, c.bin(), args...).Output()
	if err != nil {
		return nil, fmt.Errorf("niri %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

func (c *Client) action(ctx context.Context, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, c.deadline())
	defer cancel()
	full := append([]string{"msg", "action"}, args...)
	if err := exec.CommandContext(ctx, c.bin(), full...).Run(); err != nil {
		return fmt.Errorf("niri %s: %w", strings.Join(full, " "), err)
	}
	return nil
}

type workspaceRecord struct {
	ID             *uint64 `json:"id"`
	Idx            *uint64 `json:"idx"`
	Name           *string `json:"name"`
	Output         *string `json:"output"`
	IsUrgent       bool    `json:"is_urgent"`
	IsActive       bool    `json:"is_active"`
	IsFocused      bool    `json:"is_focused"`
	ActiveWindowID *uint64 `json:"active_window_id"`
}

// Workspaces queries the current workspace set. Parsing is forgiving:
// elements missing an id or idx get positional fallbacks with a logged
// warning, and a missing output falls back to eDP-1. The result is sorted
// by id.
func (c *Client) Workspaces(ctx context.Context) ([]WorkspaceInfo, error) {
	out, err := c.output(ctx, "msg", "-j", "workspaces")
	if err != nil {
		return nil, err
	}
	var records []workspaceRecord
	if err := json.Unmarshal(out, &records); err != nil {
		return nil, fmt.Errorf("decode workspaces: %w", err)
	}

	workspaces := make([]WorkspaceInfo, 0, len(records))
	for i, rec := range records {
		id := uint64(i + 1)
		if rec.ID != nil {
			id = *rec.ID
		} else {
			logging.Warnf("workspace at index %d has no id, using %d", i, id)
		}
		idx := uint64(i + 1)
		if rec.Idx != nil && *rec.Idx <= math.MaxUint32 {
			idx = *rec.Idx
		} else {
			logging.Warnf("workspace %d has no usable idx, using %d", id, idx)
		}
		output := "eDP-1"
		if rec.Output != nil {
			output = *rec.Output
		}
		workspaces = append(workspaces, WorkspaceInfo{
			ID:             id,
			Idx:            uint32(idx),
			Name:           rec.Name,
			Output:         output,
			IsUrgent:       rec.IsUrgent,
			IsActive:       rec.IsActive,
			IsFocused:      rec.IsFocused,
			ActiveWindowID: rec.ActiveWindowID,
		})
	}
	sort.Slice(workspaces, func(i, j int) bool { return workspaces[i].ID < workspaces[j].ID })
	return workspaces, nil
}

type windowRecord struct {
	ID          *uint64 `json:"id"`
	Title       *string `json:"title"`
	AppID       *string `json:"app_id"`
	PID         uint64  `json:"pid"`
	WorkspaceID *uint64 `json:"workspace_id"`
	IsFocused   bool    `json:"is_focused"`
	IsFloating  bool    `json:"is_floating"`
	IsUrgent    bool    `json:"is_urgent"`
}

// Windows queries the current window set. Elements without an id, title, or
// workspace id are skipped; the remaining fields default when absent.
func (c *Client) Windows(ctx context.Context) ([]WindowInfo, error) {
	out, err := c.output(ctx, "msg", "-j", "windows")
	if err != nil {
		return nil, err
	}
	var records []windowRecord
	if err := json.Unmarshal(out, &records); err != nil {
		return nil, fmt.Errorf("decode windows: %w", err)
	}

	windows := make([]WindowInfo, 0, len(records))
	for _, rec := range records {
		if rec.ID == nil || rec.Title == nil || rec.WorkspaceID == nil {
			continue
		}
		windows = append(windows, WindowInfo{
			ID:          *rec.ID,
			Title:       *rec.Title,
			AppID:       rec.AppID,
			PID:         rec.PID,
			WorkspaceID: *rec.WorkspaceID,
			IsFocused:   rec.IsFocused,
			IsFloating:  rec.IsFloating,
			IsUrgent:    rec.IsUrgent,
		})
	}
	return windows, nil
}

// FocusWorkspace asks the compositor to focus the workspace at the given
// display position.
func (c *Client) FocusWorkspace(ctx context.Context, idx uint32) error {
	return c.action(ctx, "focus-workspace", strconv.FormatUint(uint64(idx), 10))
}

// FocusWindow asks the compositor to focus the window with the given id.
func (c *Client) FocusWindow(ctx context.Context, id uint64) error {
	return c.action(ctx, "focus-window", "--id", strconv.FormatUint(id, 10))
}

// CloseWindow asks the compositor to close the window with the given id.
func (c *Client) CloseWindow(ctx context.Context, id uint64) error {
	return c.action(ctx, "close-window", "--id", strconv.FormatUint(id, 10))
}

// ToggleOverview opens or closes the compositor overview.
func (c *Client) ToggleOverview(ctx context.Context) error {
	return c.action(ctx, "toggle-overview")
}
