// Package ipc implements the control channel: a line-oriented show/hide/list
// protocol over a local unix socket, served by the panel and spoken by the
// niri-panel-ctrl client.
package ipc

import (
	"fmt"
	"os"
	"path/filepath"
)

const socketName = "niri-panel.sock"

// SocketPath resolves the control socket location. An explicit override wins.
// Otherwise the socket lives in XDG_RUNTIME_DIR, with /tmp/runtime-$USER as
// the fallback when that is unset (and a literal "user" when USER is unset
// too). Server and client must agree, so both call this.
func SocketPath(override string) string {
	if override != "" {
		return override
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		user := os.Getenv("USER")
		if user == "" {
			user = "user"
		}
		runtimeDir = fmt.Sprintf("/tmp/runtime-%s", user)
	}
	return filepath.Join(runtimeDir, socketName)
}
