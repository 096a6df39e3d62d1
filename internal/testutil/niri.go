package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFakeNiri writes an executable shell script into a temp directory and
// returns its path. Tests point the stream supervisor or the one-shot client
// at the script instead of a real compositor; the script body decides what
// to print for the arguments it receives.
func WriteFakeNiri(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "niri")
	contents := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(contents), 0o755); err != nil {
		t.Fatalf("failed to write fake niri: %v", err)
	}
	return path
}
