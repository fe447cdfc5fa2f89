package threads

import (
	"time"

	"github.com/linkdata/deadlock"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/xpd54/gocommon/timestamp"
)

// AutoResetEvent is a signaling primitive that releases exactly one waiter
// per signal. Signaling an event that is already set is a no-op; the set
// state is consumed by the next waiter.
type AutoResetEvent struct {
	ch chan struct{}
}

// NewAutoResetEvent returns a new unsignaled auto-reset event.
func NewAutoResetEvent() *AutoResetEvent {
	return &AutoResetEvent{ch: make(chan struct{}, 1)}
}

// Signal sets the event, releasing one current or future waiter.
func (e *AutoResetEvent) Signal() {
	select {
	case e.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until the event is signaled and consumes the signal.
func (e *AutoResetEvent) Wait() {
	<-e.ch
}

// TryWait consumes a pending signal without blocking.
func (e *AutoResetEvent) TryWait() bool {
	select {
	case <-e.ch:
		return true
	default:
		return false
	}
}

// TryWaitFor waits for a signal until timeout elapses. A non-positive
// timeout degenerates to a single TryWait.
func (e *AutoResetEvent) TryWaitFor(timeout timestamp.Timespan) bool {
	if timeout <= 0 {
		return e.TryWait()
	}
	timer := time.NewTimer(timeout.Duration())
	defer timer.Stop()
	select {
	case <-e.ch:
		return true
	case <-timer.C:
		return false
	}
}

// ManualResetEvent is a signaling primitive that releases every current and
// future waiter once signaled, until explicitly reset.
type ManualResetEvent struct {
	mu  deadlock.Mutex
	set bool
	ch  chan struct{}
}

// NewManualResetEvent returns a new unsignaled manual-reset event.
func NewManualResetEvent() *ManualResetEvent {
	return &ManualResetEvent{ch: make(chan struct{})}
}

// Signal sets the event, releasing all waiters.
func (e *ManualResetEvent) Signal() {
	e.mu.Lock()
	if !e.set {
		e.set = true
		close(e.ch)
	}
	e.mu.Unlock()
}

// Reset returns the event to the unsignaled state.
func (e *ManualResetEvent) Reset() {
	e.mu.Lock()
	if e.set {
		e.set = false
		e.ch = make(chan struct{})
	}
	e.mu.Unlock()
}

func (e *ManualResetEvent) waitChan() chan struct{} {
	e.mu.Lock()
	ch := e.ch
	e.mu.Unlock()
	return ch
}

// Wait blocks until the event is signaled.
func (e *ManualResetEvent) Wait() {
	<-e.waitChan()
}

// TryWait reports whether the event is signaled, without blocking.
func (e *ManualResetEvent) TryWait() bool {
	select {
	case <-e.waitChan():
		return true
	default:
		return false
	}
}

// TryWaitFor waits for the event until timeout elapses. A non-positive
// timeout degenerates to a single TryWait.
func (e *ManualResetEvent) TryWaitFor(timeout timestamp.Timespan) bool {
	if timeout <= 0 {
		return e.TryWait()
	}
	timer := time.NewTimer(timeout.Duration())
	defer timer.Stop()
	select {
	case <-e.waitChan():
		return true
	case <-timer.C:
		return false
	}
}

var (
	namedAutoEvents   = xsync.NewMapOf[string, *AutoResetEvent]()
	namedManualEvents = xsync.NewMapOf[string, *ManualResetEvent]()
)

// NamedAutoResetEvent returns the process-wide auto-reset event registered
// under name, creating it on first use. Callers in different goroutines
// rendezvous on the same instance by agreeing on the name.
func NamedAutoResetEvent(name string) *AutoResetEvent {
	e, _ := namedAutoEvents.LoadOrCompute(name, NewAutoResetEvent)
	return e
}

// NamedManualResetEvent returns the process-wide manual-reset event
// registered under name, creating it on first use.
func NamedManualResetEvent(name string) *ManualResetEvent {
	e, _ := namedManualEvents.LoadOrCompute(name, NewManualResetEvent)
	return e
}
