package ipc

import "testing"

func TestSocketPathPrefersRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("USER", "alice")
	if got := SocketPath(""); got != "/run/user/1000/niri-panel.sock" {
		t.Fatalf("expected runtime dir path, got %q", got)
	}
}

func TestSocketPathFallsBackToUserTmp(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("USER", "alice")
	if got := SocketPath(""); got != "/tmp/runtime-alice/niri-panel.sock" {
		t.Fatalf("expected user tmp fallback, got %q", got)
	}
}

func TestSocketPathFallsBackWithoutUser(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("USER", "")
	if got := SocketPath(""); got != "/tmp/runtime-user/niri-panel.sock" {
		t.Fatalf("expected anonymous fallback, got %q", got)
	}
}

func TestSocketPathOverrideWins(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	if got := SocketPath("/tmp/custom.sock"); got != "/tmp/custom.sock" {
		t.Fatalf("expected override to win, got %q", got)
	}
}
