package threads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xpd54/gocommon/threads"
	"github.com/xpd54/gocommon/timestamp"
)

func TestSpinLockTryLock(t *testing.T) {
	var l threads.SpinLock

	require.True(t, l.TryLock())
	assert.False(t, l.TryLock())
	l.Unlock()
	require.True(t, l.TryLock())
	l.Unlock()
}

func TestSpinLockGuardsCounter(t *testing.T) {
	var l threads.SpinLock
	var g errgroup.Group
	counter := 0

	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 500; j++ {
				l.Lock()
				counter++
				l.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 8*500, counter)
}

func TestSpinLockTryLockFor(t *testing.T) {
	var l threads.SpinLock
	require.True(t, l.TryLockFor(timestamp.Milliseconds(10)))

	start := timestamp.Nano()
	ok := l.TryLockFor(timestamp.Milliseconds(10))
	elapsed := timestamp.Since(start)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, elapsed, timestamp.Milliseconds(10))

	// Zero timeout is a single attempt.
	assert.False(t, l.TryLockFor(0))
	l.Unlock()
	assert.True(t, l.TryLockFor(0))
	l.Unlock()
}

func TestSpinLockUnlockOfUnlockedPanics(t *testing.T) {
	var l threads.SpinLock
	assert.Panics(t, func() { l.Unlock() })
}
