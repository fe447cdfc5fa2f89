//go:build readbiased

package threads

import (
	"github.com/petermattis/goid"
	"github.com/puzpuzpuz/xsync/v3"
)

// rwBackend is the read-biased lock backend over xsync.RBMutex, selected with
// the readbiased build tag for read-mostly workloads. RBMutex hands each
// reader a token that must be presented on release; tokens are kept in a
// per-goroutine stack keyed by goroutine id so the RWLock release methods
// keep their signatures and a goroutine may stack any number of shared
// holds, matching the default backend.
//
// This backend requires UnlockRead to run on a goroutine that acquired a
// shared hold.
type rwBackend struct {
	mu     *xsync.RBMutex
	tokens *xsync.MapOf[int64, []*xsync.RToken]
}

func newRWBackend() rwBackend {
	return rwBackend{
		mu:     xsync.NewRBMutex(),
		tokens: xsync.NewMapOf[int64, []*xsync.RToken](),
	}
}

func (b *rwBackend) pushToken(t *xsync.RToken) {
	b.tokens.Compute(goid.Get(), func(stack []*xsync.RToken, _ bool) ([]*xsync.RToken, bool) {
		return append(stack, t), false
	})
}

func (b *rwBackend) popToken() *xsync.RToken {
	var t *xsync.RToken
	b.tokens.Compute(goid.Get(), func(stack []*xsync.RToken, _ bool) ([]*xsync.RToken, bool) {
		if len(stack) == 0 {
			return nil, true
		}
		t = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return stack, len(stack) == 0
	})
	if t == nil {
		panic("threads: UnlockRead of an RWLock not read-locked by this goroutine")
	}
	return t
}

func (b *rwBackend) tryLockRead() bool {
	ok, t := b.mu.TryRLock()
	if ok {
		b.pushToken(t)
	}
	return ok
}

func (b *rwBackend) tryLockWrite() bool { return b.mu.TryLock() }

func (b *rwBackend) lockRead() {
	b.pushToken(b.mu.RLock())
}

func (b *rwBackend) lockWrite() { b.mu.Lock() }

func (b *rwBackend) unlockRead() {
	b.mu.RUnlock(b.popToken())
}

func (b *rwBackend) unlockWrite() { b.mu.Unlock() }
