// Package app assembles and runs the panel daemon.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/niri-panel/internal/config"
	"github.com/atomicstack/niri-panel/internal/ipc"
	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/mainloop"
	"github.com/atomicstack/niri-panel/internal/niri"
	"github.com/atomicstack/niri-panel/internal/notify"
	"github.com/atomicstack/niri-panel/internal/panel"
	"github.com/atomicstack/niri-panel/internal/registry"
	"github.com/atomicstack/niri-panel/internal/state"
)

// Run bootstraps the daemon and processes loop callbacks until a termination
// signal stops the loop. The calling goroutine becomes the UI context.
func Run(settings config.Settings) error {
	configPath := settings.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPanelPath()
	}
	cfg, err := config.LoadPanel(configPath)
	if err != nil {
		return fmt.Errorf("load panel config: %w", err)
	}

	loop := mainloop.New()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		sig := <-sigc
		events.App.Shutdown(sig.String())
		loop.Stop()
	}()

	reg := registry.New()
	workspaces := state.NewWorkspaceStore()
	windows := state.NewWindowStore()
	client := &niri.Client{Bin: settings.NiriBin, Timeout: settings.CommandTimeout}
	deps := panel.Deps{Client: client, Workspaces: workspaces, Windows: windows}

	// The loop has not started, so this goroutine is still the UI context.
	panel.Build(cfg, reg, deps)

	server, err := ipc.StartServer(loop, reg, ipc.SocketPath(settings.SocketPath))
	if err != nil {
		return fmt.Errorf("start control server: %w", err)
	}
	defer server.Close()

	if settings.EventStream {
		dispatcher := panel.NewDispatcher(workspaces, windows, notify.New())
		stream, err := niri.StartStream(settings.NiriBin)
		if err != nil {
			return fmt.Errorf("start event stream: %w", err)
		}
		stream.Attach(loop, dispatcher.Handle)
		defer stream.Wait()
		defer stream.Stop()
	}

	go primeStores(client, loop, workspaces, windows)

	watcher, err := config.WatchPanel(configPath, loop, func(next config.PanelConfig) {
		reg.Reset()
		panel.Build(next, reg, deps)
	})
	if err != nil {
		logging.Error(fmt.Errorf("watch panel config: %w", err))
	} else {
		defer watcher.Close()
	}

	loop.Run()
	return nil
}

// primeStores seeds the workspace and window stores with one-shot queries.
// Failures keep the built-in defaults; the event stream corrects the stores
// once the compositor starts talking.
func primeStores(client *niri.Client, loop *mainloop.Loop, workspaces state.WorkspaceStore, windows state.WindowStore) {
	ctx := context.Background()
	if ws, err := client.Workspaces(ctx); err != nil {
		logging.Error(fmt.Errorf("prime workspaces: %w", err))
	} else {
		loop.Post(func() { workspaces.Update(ws) })
	}
	if wins, err := client.Windows(ctx); err != nil {
		logging.Error(fmt.Errorf("prime windows: %w", err))
	} else {
		loop.Post(func() { windows.Update(wins) })
	}
}
