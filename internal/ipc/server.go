package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/mainloop"
	"github.com/atomicstack/niri-panel/internal/registry"
)

// Server owns the control socket. Connections are handled on short-lived
// goroutines that read one command line, hand it to the UI context, and
// acknowledge. The registry is only ever touched from loop callbacks.
type Server struct {
	path     string
	listener net.Listener
	loop     *mainloop.Loop
	registry *registry.Registry

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// StartServer resolves and binds the control socket, then begins accepting
// connections in the background. A stale socket file left by a dead process
// is removed; a socket held by a live listener is a bind failure.
func StartServer(loop *mainloop.Loop, reg *registry.Registry, path string) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		if conn, err := net.Dial("unix", path); err == nil {
			conn.Close()
			return nil, fmt.Errorf("control socket %s is already in use", path)
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("remove stale socket: %w", err)
		}
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("bind control socket: %w", err)
	}

	s := &Server{
		path:     path,
		listener: listener,
		loop:     loop,
		registry: reg,
	}
	s.wg.Add(1)
	go s.acceptLoop()
	events.Socket.Listen(path)
	return s, nil
}

// Path returns the bound socket path.
func (s *Server) Path() string {
	return s.path
}

// Close stops accepting connections and removes the socket file. Handlers
// already in flight finish their single exchange.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.listener.Close()
		os.Remove(s.path)
	})
	return err
}

// Wait blocks until the accept loop and all connection handlers have exited.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			// One failed accept must not take the server down.
			logging.Error(fmt.Errorf("accept control connection: %w", err))
			continue
		}
		s.wg.Add(1)
		go s.handle(conn)
	}
}

// handle reads exactly one line, forwards it to the UI context, and always
// answers "OK\n" for any successfully read line. A connection that closes
// before sending anything gets no response. The protocol is fire-and-forget:
// the acknowledgment says nothing about whether the widget existed.
func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	id := uuid.New().String()
	events.Socket.Accept(id)

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logging.Error(fmt.Errorf("read control command: %w", err))
			return
		}
		if line == "" {
			return
		}
		// A final unterminated line still counts as a command.
	}

	command := strings.TrimSpace(line)
	if command == "" {
		events.Socket.Drop("", events.SocketDropEmpty)
	} else {
		events.Socket.Command(id, command)
		s.loop.Post(func() { s.dispatch(command) })
	}

	if _, err := conn.Write([]byte("OK\n")); err != nil {
		logging.Error(fmt.Errorf("write control response: %w", err))
	}
}

// dispatch runs on the UI context and is the only place commands touch the
// registry.
func (s *Server) dispatch(command string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return
	}
	verb := fields[0]
	switch verb {
	case "show", "hide":
		if len(fields) < 2 {
			logging.Error(fmt.Errorf("control command %q: missing widget name", verb))
			events.Socket.Drop(command, events.SocketDropNoArg)
			return
		}
		name := fields[1]
		found := false
		if verb == "show" {
			found = s.registry.Show(name)
		} else {
			found = s.registry.Hide(name)
		}
		if !found {
			logging.Infof("control command %q: widget %q not registered", verb, name)
		}
		events.Socket.Dispatch(verb, name, found)
	case "list":
		names := s.registry.Names()
		logging.Infof("registered widgets: %s", strings.Join(names, ", "))
		events.Socket.List(names)
	default:
		logging.Error(fmt.Errorf("unknown control command %q", command))
		events.Socket.Drop(command, events.SocketDropUnknown)
	}
}
