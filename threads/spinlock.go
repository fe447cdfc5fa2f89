package threads

import (
	"sync/atomic"

	"github.com/xpd54/gocommon/timestamp"
)

// SpinLock is a mutual-exclusion lock that busy-waits instead of parking the
// goroutine. It suits very small critical sections under low contention.
// The zero value is an unlocked SpinLock. It must not be copied after first
// use and is not recursive.
type SpinLock struct {
	noCopy noCopy
	locked atomic.Bool
}

// TryLock attempts to acquire the lock without blocking.
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwap(false, true)
}

// Lock spins with cooperative yields until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.TryLock() {
		Yield()
	}
}

// TryLockFor attempts acquisition, retrying with cooperative yields until
// success or until timeout elapses. A non-positive timeout performs exactly
// one attempt.
func (l *SpinLock) TryLockFor(timeout timestamp.Timespan) bool {
	return tryAcquireFor(l.TryLock, timeout)
}

// Unlock releases the lock. Unlocking a lock that is not held panics.
func (l *SpinLock) Unlock() {
	if !l.locked.CompareAndSwap(true, false) {
		panic("threads: Unlock of an unlocked SpinLock")
	}
}
