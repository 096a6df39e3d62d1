package state

import (
	"testing"

	"github.com/atomicstack/niri-panel/internal/niri"
)

func ws(id uint64, output string, active, focused bool) niri.WorkspaceInfo {
	return niri.WorkspaceInfo{
		ID:        id,
		Idx:       uint32(id),
		Output:    output,
		IsActive:  active,
		IsFocused: focused,
	}
}

func TestWorkspaceStoreStartsWithDefaults(t *testing.T) {
	store := NewWorkspaceStore()
	all := store.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 default workspaces, got %d", len(all))
	}
	for i, workspace := range all {
		if workspace.ID != uint64(i+1) || workspace.Output != "eDP-1" {
			t.Fatalf("unexpected default workspace %d: %+v", i, workspace)
		}
	}
	if !all[0].IsActive || !all[0].IsFocused {
		t.Fatal("expected the first default workspace to be active and focused")
	}
	if all[1].IsActive || all[1].IsFocused {
		t.Fatal("expected later default workspaces to be inactive")
	}
}

func TestWorkspaceStoreUpdateSortsByID(t *testing.T) {
	store := NewWorkspaceStore()
	store.Update([]niri.WorkspaceInfo{
		ws(3, "eDP-1", false, false),
		ws(1, "eDP-1", true, true),
		ws(2, "eDP-1", false, false),
	})
	all := store.All()
	for i, id := range []uint64{1, 2, 3} {
		if all[i].ID != id {
			t.Fatalf("expected sorted ids, got %d at %d", all[i].ID, i)
		}
	}
}

func TestWorkspaceStoreEmptyUpdateRestoresDefaults(t *testing.T) {
	store := NewWorkspaceStore()
	store.Update([]niri.WorkspaceInfo{ws(9, "DP-1", true, true)})
	store.Update(nil)
	all := store.All()
	if len(all) != 4 || all[0].ID != 1 || all[0].Output != "eDP-1" {
		t.Fatalf("expected defaults after empty update, got %+v", all)
	}
}

func TestWorkspaceStoreAllReturnsCopy(t *testing.T) {
	store := NewWorkspaceStore()
	all := store.All()
	all[0].Output = "HDMI-A-1"
	if fresh := store.All(); fresh[0].Output != "eDP-1" {
		t.Fatalf("expected store to be isolated from caller mutation, got %q", fresh[0].Output)
	}
}

func TestActivateMovesActiveWithinOutput(t *testing.T) {
	store := NewWorkspaceStore()
	store.Update([]niri.WorkspaceInfo{
		ws(1, "eDP-1", true, true),
		ws(2, "eDP-1", false, false),
		ws(3, "DP-1", true, false),
	})

	store.Activate(2, false)

	all := store.All()
	if all[0].IsActive || !all[1].IsActive {
		t.Fatalf("expected active flag to move to workspace 2, got %+v", all)
	}
	if !all[2].IsActive {
		t.Fatal("expected the other output to keep its active workspace")
	}
	if !all[0].IsFocused {
		t.Fatal("expected focus to stay put without the focused flag")
	}
}

func TestActivateWithFocusUnfocusesEverywhere(t *testing.T) {
	store := NewWorkspaceStore()
	store.Update([]niri.WorkspaceInfo{
		ws(1, "eDP-1", true, true),
		ws(2, "eDP-1", false, false),
		ws(3, "DP-1", true, false),
	})

	store.Activate(3, true)

	all := store.All()
	if !all[2].IsFocused || all[0].IsFocused || all[1].IsFocused {
		t.Fatalf("expected focus to land on workspace 3 only, got %+v", all)
	}
	if !all[2].IsActive {
		t.Fatal("expected workspace 3 to be active on its output")
	}
	if !all[0].IsActive {
		t.Fatal("expected the other output to be left alone")
	}
}

func TestActivateUnknownIDIsIgnored(t *testing.T) {
	store := NewWorkspaceStore()
	store.Update([]niri.WorkspaceInfo{ws(1, "eDP-1", true, true)})
	store.Activate(99, true)
	all := store.All()
	if !all[0].IsActive || !all[0].IsFocused {
		t.Fatalf("expected store untouched by unknown id, got %+v", all[0])
	}
}

func TestWorkspaceStoreLookups(t *testing.T) {
	store := NewWorkspaceStore()
	store.Update([]niri.WorkspaceInfo{
		ws(1, "eDP-1", true, false),
		ws(2, "DP-1", true, true),
	})

	if _, ok := store.ByID(3); ok {
		t.Fatal("expected miss for unknown id")
	}
	found, ok := store.ByID(2)
	if !ok || found.Output != "DP-1" {
		t.Fatalf("expected workspace 2 on DP-1, got %+v ok=%v", found, ok)
	}

	focused, ok := store.Focused()
	if !ok || focused.ID != 2 {
		t.Fatalf("expected workspace 2 focused, got %+v ok=%v", focused, ok)
	}

	active, ok := store.ActiveOnOutput("eDP-1")
	if !ok || active.ID != 1 {
		t.Fatalf("expected workspace 1 active on eDP-1, got %+v ok=%v", active, ok)
	}
	if _, ok := store.ActiveOnOutput("HDMI-A-1"); ok {
		t.Fatal("expected miss for unknown output")
	}
}
