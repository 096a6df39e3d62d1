package ipc

import (
	"io"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/mainloop"
	"github.com/atomicstack/niri-panel/internal/registry"
)

type fakePopover struct {
	visible bool
	shows   int
	hides   int
}

func (f *fakePopover) Popup() {
	f.visible = true
	f.shows++
}

func (f *fakePopover) Popdown() {
	f.visible = false
	f.hides++
}

// startTestServer brings up a loop, a registry, and a control server on a
// socket under t.TempDir(). Registry access in assertions must go through
// loop.PostWait, same as production code.
func startTestServer(t *testing.T) (*mainloop.Loop, *registry.Registry, string) {
	t.Helper()

	logging.Configure(filepath.Join(t.TempDir(), "niri-panel.log"))

	loop := mainloop.New()
	go loop.Run()

	reg := registry.New()
	path := filepath.Join(t.TempDir(), "panel.sock")

	server, err := StartServer(loop, reg, path)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}

	t.Cleanup(func() {
		server.Close()
		server.Wait()
		loop.Stop()
	})

	return loop, reg, path
}

func registerPopover(t *testing.T, loop *mainloop.Loop, reg *registry.Registry, w registry.Widget) *fakePopover {
	t.Helper()
	p := &fakePopover{}
	loop.PostWait(func() { reg.Register(w, p) })
	return p
}

func TestShowAndHideOverSocket(t *testing.T) {
	loop, reg, path := startTestServer(t)
	clock := registerPopover(t, loop, reg, registry.Clock)
	client := Client{Path: path}

	response, err := client.SendCommand("show clock")
	if err != nil {
		t.Fatalf("send show: %v", err)
	}
	if response != "OK" {
		t.Fatalf("expected OK, got %q", response)
	}

	// The dispatch callback is posted before the acknowledgement is
	// written, so it is already queued ahead of this PostWait.
	var visible bool
	loop.PostWait(func() { visible = clock.visible })
	if !visible {
		t.Fatal("expected clock popover to be visible after show")
	}

	if _, err := client.SendCommand("hide clock"); err != nil {
		t.Fatalf("send hide: %v", err)
	}
	loop.PostWait(func() { visible = clock.visible })
	if visible {
		t.Fatal("expected clock popover to be hidden after hide")
	}
}

func TestUnknownCommandStillAcknowledged(t *testing.T) {
	loop, reg, path := startTestServer(t)
	clock := registerPopover(t, loop, reg, registry.Clock)

	response, err := Client{Path: path}.SendCommand("frobnicate widget1")
	if err != nil {
		t.Fatalf("send command: %v", err)
	}
	if response != "OK" {
		t.Fatalf("expected OK for unknown command, got %q", response)
	}

	var shows, hides int
	loop.PostWait(func() { shows, hides = clock.shows, clock.hides })
	if shows != 0 || hides != 0 {
		t.Fatalf("expected no popover activity, got shows=%d hides=%d", shows, hides)
	}
}

func TestUnregisteredWidgetStillAcknowledged(t *testing.T) {
	_, _, path := startTestServer(t)

	response, err := Client{Path: path}.SendCommand("show battery")
	if err != nil {
		t.Fatalf("send command: %v", err)
	}
	if response != "OK" {
		t.Fatalf("expected OK for unregistered widget, got %q", response)
	}
}

func TestMissingArgumentStillAcknowledged(t *testing.T) {
	loop, reg, path := startTestServer(t)
	clock := registerPopover(t, loop, reg, registry.Clock)

	response, err := Client{Path: path}.SendCommand("show")
	if err != nil {
		t.Fatalf("send command: %v", err)
	}
	if response != "OK" {
		t.Fatalf("expected OK, got %q", response)
	}

	var shows int
	loop.PostWait(func() { shows = clock.shows })
	if shows != 0 {
		t.Fatalf("expected no show without an argument, got %d", shows)
	}
}

func TestOneCommandPerConnection(t *testing.T) {
	loop, reg, path := startTestServer(t)
	clock := registerPopover(t, loop, reg, registry.Clock)

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("show clock\nhide clock\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "OK\n" {
		t.Fatalf("expected a single OK then close, got %q", data)
	}

	var shows, hides int
	var visible bool
	loop.PostWait(func() {
		shows, hides = clock.shows, clock.hides
		visible = clock.visible
	})
	if shows != 1 || hides != 0 {
		t.Fatalf("expected only the first line to dispatch, got shows=%d hides=%d", shows, hides)
	}
	if !visible {
		t.Fatal("expected clock to stay visible, the second line must not run")
	}
}

func TestEmptyLineAcknowledgedWithoutDispatch(t *testing.T) {
	loop, reg, path := startTestServer(t)
	clock := registerPopover(t, loop, reg, registry.Clock)

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "OK\n" {
		t.Fatalf("expected OK for empty line, got %q", data)
	}

	var shows, hides int
	loop.PostWait(func() { shows, hides = clock.shows, clock.hides })
	if shows != 0 || hides != 0 {
		t.Fatalf("expected no dispatch for empty line, got shows=%d hides=%d", shows, hides)
	}
}

func TestDisconnectWithoutCommandIsHarmless(t *testing.T) {
	_, _, path := startTestServer(t)

	conn, err := net.Dial("unix", path)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.Close()

	// The server must keep accepting after a client bails out early.
	response, err := Client{Path: path}.SendCommand("list")
	if err != nil {
		t.Fatalf("send after disconnect: %v", err)
	}
	if response != "OK" {
		t.Fatalf("expected OK, got %q", response)
	}
}

func TestListIsAcknowledgedWithoutPayload(t *testing.T) {
	loop, reg, path := startTestServer(t)
	registerPopover(t, loop, reg, registry.Clock)
	registerPopover(t, loop, reg, registry.Battery)

	// The wire protocol has no payload channel. The registered names go
	// to the log only, so the client sees a bare acknowledgement.
	response, err := Client{Path: path}.SendCommand("list")
	if err != nil {
		t.Fatalf("send list: %v", err)
	}
	if response != "OK" {
		t.Fatalf("expected bare OK for list, got %q", response)
	}
}

func TestStaleSocketFileIsReplaced(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "niri-panel.log"))
	path := filepath.Join(t.TempDir(), "panel.sock")

	stale, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	stale.(*net.UnixListener).SetUnlinkOnClose(false)
	stale.Close()

	loop := mainloop.New()
	go loop.Run()
	defer loop.Stop()

	server, err := StartServer(loop, registry.New(), path)
	if err != nil {
		t.Fatalf("expected stale socket to be replaced, got %v", err)
	}
	defer server.Close()

	if _, err := (Client{Path: path}).SendCommand("list"); err != nil {
		t.Fatalf("round trip on recovered socket: %v", err)
	}
}

func TestLiveSocketIsNotStolen(t *testing.T) {
	loop, _, path := startTestServer(t)

	_, err := StartServer(loop, registry.New(), path)
	if err == nil {
		t.Fatal("expected second server on a live socket to fail")
	}
	if !strings.Contains(err.Error(), "already in use") {
		t.Fatalf("expected an already-in-use error, got %v", err)
	}
}

func TestSendCommandWithoutServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.sock")
	if _, err := (Client{Path: path}).SendCommand("show clock"); err == nil {
		t.Fatal("expected connect error when no server is listening")
	}
}

func TestConcurrentClients(t *testing.T) {
	loop, reg, path := startTestServer(t)
	clock := registerPopover(t, loop, reg, registry.Clock)

	const clients = 8
	const perClient = 5

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			verb := "show"
			if n%2 == 1 {
				verb = "hide"
			}
			for j := 0; j < perClient; j++ {
				response, err := Client{Path: path}.SendCommand(verb + " clock")
				if err != nil {
					t.Errorf("concurrent client: %v", err)
					return
				}
				if response != "OK" {
					t.Errorf("expected OK, got %q", response)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	if t.Failed() {
		return
	}

	var total int
	loop.PostWait(func() { total = clock.shows + clock.hides })
	if total != clients*perClient {
		t.Fatalf("expected %d dispatches, got %d", clients*perClient, total)
	}
}
