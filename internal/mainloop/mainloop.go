// Package mainloop provides the single-threaded execution context that owns
// every popover handle and registry mutation. Background goroutines hand work
// to it over a channel; the loop runs callbacks one at a time, to completion,
// on the goroutine that called Run.
package mainloop

import "sync"

// Loop queues callbacks from many producers onto one consumer goroutine.
type Loop struct {
	callbacks chan func()

	mu      sync.Mutex
	running bool

	quit     chan struct{}
	stopOnce sync.Once
}

// New returns a loop ready to accept posts. Nothing runs until Run is called.
func New() *Loop {
	return &Loop{
		callbacks: make(chan func(), 64),
		quit:      make(chan struct{}),
	}
}

// Run claims the calling goroutine as the UI context and processes callbacks
// until Stop is called. Callbacks run sequentially and to completion.
func (l *Loop) Run() {
	l.mu.Lock()
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	for {
		select {
		case <-l.quit:
			return
		case fn := <-l.callbacks:
			fn()
		}
	}
}

// Running reports whether Run is currently processing callbacks.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Post enqueues fn for execution on the UI context. Safe to call from any
// goroutine. After Stop the callback is dropped.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.quit:
	case l.callbacks <- fn:
	}
}

// PostWait enqueues fn and blocks until it has run, or until the loop stops
// first. Must not be called from the UI context itself: the loop cannot run
// the callback while it is blocked inside it.
func (l *Loop) PostWait(fn func()) {
	ran := make(chan struct{})
	l.Post(func() {
		defer close(ran)
		fn()
	})
	select {
	case <-ran:
	case <-l.quit:
	}
}

// Stop ends Run after the callback in flight, if any, completes. Queued
// callbacks are not drained. Safe to call more than once and from any
// goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.quit)
	})
}
