//go:build !readbiased

package threads

import "sync"

// rwBackend is the default lock backend over sync.RWMutex. The runtime parks
// blocked goroutines and provides write-preferring admission.
type rwBackend struct {
	mu sync.RWMutex
}

func newRWBackend() rwBackend { return rwBackend{} }

func (b *rwBackend) tryLockRead() bool  { return b.mu.TryRLock() }
func (b *rwBackend) tryLockWrite() bool { return b.mu.TryLock() }
func (b *rwBackend) lockRead()          { b.mu.RLock() }
func (b *rwBackend) lockWrite()         { b.mu.Lock() }
func (b *rwBackend) unlockRead()        { b.mu.RUnlock() }
func (b *rwBackend) unlockWrite()       { b.mu.Unlock() }
