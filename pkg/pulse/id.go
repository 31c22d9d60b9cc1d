package pulse

import "sync/atomic"

// globalIDCounter is the source of unique IDs for expiry tokens.
// Atomic increments keep ID generation safe without locks.
var globalIDCounter uint64

// nextID returns the next unique ID.
// IDs are monotonically increasing, never zero, and never reused.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
