package niri

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/mainloop"
)

var streamArgs = []string{"msg", "-j", "event-stream"}

// Stream supervises the `niri msg -j event-stream` subprocess. A parser
// goroutine turns stdout lines into Events, a drain goroutine logs stderr,
// and Attach adds the forwarder that hands events to the UI context. Killing
// the subprocess ends all of them through pipe closure.
type Stream struct {
	cmd    *exec.Cmd
	events chan Event

	ctx    context.Context
	cancel context.CancelFunc

	wg       sync.WaitGroup
	stopOnce sync.Once
	done     chan struct{}
}

// StartStream spawns the event-stream subprocess and begins parsing. The
// returned stream owns the subprocess; call Stop to terminate it.
func StartStream(bin string) (*Stream, error) {
	if bin == "" {
		bin = "niri"
	}
	cmd := exec.Command(bin, streamArgs...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("capture stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("capture stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", bin, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Stream{
		cmd:    cmd,
		events: make(chan Event, 16),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	s.wg.Add(2)
	go s.drainStderr(stderr)
	go s.parseStdout(stdout)

	go func() {
		s.wg.Wait()
		s.cmd.Wait()
		close(s.events)
		close(s.done)
	}()

	events.Stream.Start(bin, streamArgs)
	return s, nil
}

// Events returns the parsed event channel. It closes after the subprocess
// exits and both reader goroutines have finished.
func (s *Stream) Events() <-chan Event {
	return s.events
}

// Attach starts the forwarder goroutine: every parsed event is re-posted onto
// the loop, where cb runs on the UI context. Call at most once.
func (s *Stream) Attach(loop *mainloop.Loop, cb func(Event)) {
	go func() {
		for ev := range s.events {
			ev := ev
			loop.Post(func() { cb(ev) })
		}
		events.Stream.Exit("forwarder", "events channel closed")
	}()
}

// Stop kills the subprocess. The reader goroutines then exit through pipe
// closure; Wait blocks until they have.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if s.cmd.Process != nil {
			s.cmd.Process.Kill()
		}
	})
}

// Wait blocks until both reader goroutines have exited and the subprocess
// has been reaped.
func (s *Stream) Wait() {
	<-s.done
}

func (s *Stream) parseStdout(stdout io.Reader) {
	defer s.wg.Done()

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		ev, err := ParseEvent(line)
		if err != nil {
			events.Stream.Drop(err.Error())
			continue
		}
		if u, ok := ev.(*Unknown); ok {
			events.Stream.Event(u.Kind)
		} else {
			events.Stream.Event(ev.Name())
		}
		select {
		case s.events <- ev:
		case <-s.ctx.Done():
			events.Stream.Exit("parser", "stopped")
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logging.Error(fmt.Errorf("event stream stdout: %w", err))
		events.Stream.Exit("parser", "read error")
		return
	}
	events.Stream.Exit("parser", "pipe closed")
}

func (s *Stream) drainStderr(stderr io.Reader) {
	defer s.wg.Done()

	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logging.Warnf("niri event stream: %s", line)
	}
	if err := scanner.Err(); err != nil {
		logging.Error(fmt.Errorf("event stream stderr: %w", err))
		events.Stream.Exit("stderr", "read error")
		return
	}
	events.Stream.Exit("stderr", "pipe closed")
}
