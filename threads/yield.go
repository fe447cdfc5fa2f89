package threads

import "runtime"

// Yield hints to the scheduler that the calling goroutine has no useful work
// right now. It relinquishes the rest of the current execution slice without
// sleeping for any minimum duration.
func Yield() {
	runtime.Gosched()
}
