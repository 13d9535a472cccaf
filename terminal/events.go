package terminal

import "sync/atomic"

// EventSet is a bit set of pending out-of-band terminal events.
type EventSet uint32

const (
	// EventInterrupt is set on SIGINT/SIGTERM (or console close)
	EventInterrupt EventSet = 1 << 0
	// EventResize is set on SIGWINCH
	EventResize EventSet = 1 << 1
)

// EventFlags accumulates asynchronously delivered events until the render
// loop consumes them. Signal handlers only ever call Post; the loop calls
// FetchClear once per tick, so multiple resize signals between ticks
// coalesce into a single rebuild and no event is lost or double-handled.
type EventFlags struct {
	bits atomic.Uint32
}

// Post records ev into the pending set. Safe from any goroutine.
func (f *EventFlags) Post(ev EventSet) {
	f.bits.Or(uint32(ev))
}

// FetchClear atomically returns the pending set and empties it.
func (f *EventFlags) FetchClear() EventSet {
	return EventSet(f.bits.Swap(0))
}
