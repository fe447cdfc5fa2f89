// Package threads provides synchronization primitives: a reader/writer lock
// with timed acquisition, a spin lock, auto and manual reset events, and a
// cooperative yield hook.
package threads

import (
	"sync"

	"github.com/xpd54/gocommon/timestamp"
)

// RWLocker describes the full capability contract of a reader/writer lock:
// shared and exclusive acquisition in blocking, non-blocking and timed
// variants.
type RWLocker interface {
	TryLockRead() bool
	TryLockWrite() bool
	TryLockReadFor(timeout timestamp.Timespan) bool
	TryLockWriteFor(timeout timestamp.Timespan) bool
	LockRead()
	LockWrite()
	UnlockRead()
	UnlockWrite()
}

// RWLock is a reader/writer mutual-exclusion lock. Any number of readers or
// exactly one writer may hold it at a time. It is safe for concurrent use by
// multiple goroutines and must not be copied after first use; share it by
// pointer.
//
// The lock is not recursive and offers no fairness guarantee beyond what the
// underlying primitive provides. Releasing a hold that was not acquired, or
// releasing with the wrong variant, is a caller contract violation delegated
// to the underlying primitive.
type RWLock struct {
	noCopy noCopy
	rw     rwBackend
}

var _ RWLocker = (*RWLock)(nil)

// NewRWLock returns a new unlocked reader/writer lock.
func NewRWLock() *RWLock {
	return &RWLock{rw: newRWBackend()}
}

// TryLockRead attempts to acquire shared access without blocking. It returns
// false if the lock is currently held exclusively.
func (l *RWLock) TryLockRead() bool { return l.rw.tryLockRead() }

// TryLockWrite attempts to acquire exclusive access without blocking. It
// returns false if any reader or writer currently holds the lock.
func (l *RWLock) TryLockWrite() bool { return l.rw.tryLockWrite() }

// LockRead blocks the calling goroutine until shared access is granted.
func (l *RWLock) LockRead() { l.rw.lockRead() }

// LockWrite blocks the calling goroutine until exclusive access is granted.
func (l *RWLock) LockWrite() { l.rw.lockWrite() }

// UnlockRead releases a shared hold previously acquired by the same
// goroutine's LockRead, TryLockRead or TryLockReadFor.
func (l *RWLock) UnlockRead() { l.rw.unlockRead() }

// UnlockWrite releases an exclusive hold.
func (l *RWLock) UnlockWrite() { l.rw.unlockWrite() }

// TryLockReadFor attempts shared acquisition, retrying with cooperative
// yields until success or until timeout elapses. A zero or negative timeout
// still performs exactly one attempt, making it equivalent to TryLockRead.
func (l *RWLock) TryLockReadFor(timeout timestamp.Timespan) bool {
	return tryAcquireFor(l.rw.tryLockRead, timeout)
}

// TryLockWriteFor attempts exclusive acquisition, retrying with cooperative
// yields until success or until timeout elapses. A zero or negative timeout
// still performs exactly one attempt, making it equivalent to TryLockWrite.
func (l *RWLock) TryLockWriteFor(timeout timestamp.Timespan) bool {
	return tryAcquireFor(l.rw.tryLockWrite, timeout)
}

// WriteLocker returns a sync.Locker view of the exclusive side of the lock.
func (l *RWLock) WriteLocker() sync.Locker { return writeLocker{l} }

// ReadLocker returns a sync.Locker view of the shared side of the lock.
func (l *RWLock) ReadLocker() sync.Locker { return readLocker{l} }

type writeLocker struct{ l *RWLock }

func (w writeLocker) Lock()   { w.l.LockWrite() }
func (w writeLocker) Unlock() { w.l.UnlockWrite() }

type readLocker struct{ l *RWLock }

func (r readLocker) Lock()   { r.l.LockRead() }
func (r readLocker) Unlock() { r.l.UnlockRead() }

// tryAcquireFor retries a non-blocking acquisition until it succeeds or the
// deadline passes. The deadline is computed once at entry from the monotonic
// clock. One attempt always happens before the first deadline check, so the
// uncontended case returns without touching the clock twice and a
// non-positive timeout degenerates to a single try.
func tryAcquireFor(try func() bool, timeout timestamp.Timespan) bool {
	deadline := timestamp.Nano().Add(timeout)

	if try() {
		return true
	}
	for timestamp.Nano().Before(deadline) {
		if try() {
			return true
		}
		Yield()
	}
	return false
}

// noCopy triggers go vet's copylocks check when a struct embedding it is
// copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
