package timestamp

import _ "unsafe"

// nanotime reads the runtime's monotonic clock directly. The direct linkage
// keeps the call cheap enough for tight polling loops.
//
//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64
