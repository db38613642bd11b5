package tacho

import "sync"

// Timestamp is a wrapping monotonic millisecond count, same domain as
// util.Millis(). Zero means "slot never written" in the ring below.
type Timestamp uint32

// RingSize is the number of edge timestamps kept. Together with
// MAX_STAMP_AGE in the estimator it is one of the two speed-window
// tunables.
const RingSize = 5

// TimestampRing keeps the timestamps of the most recent sensor edges.
// The edge event handler is the only writer; the estimator only ever
// takes a snapshot. The mutex stands in for the interrupt masking an
// MCU port would use and is held for an O(RingSize) copy at most.
type TimestampRing struct {
	mu            sync.Mutex
	slots         [RingSize]Timestamp
	writeCursor   int
	lastWriteTime Timestamp
}

// Record stores the timestamp of one falling edge, overwriting the
// oldest slot. Called from the edge event goroutine only. Does not
// allocate.
func (r *TimestampRing) Record(now Timestamp) {
	r.mu.Lock()
	r.slots[r.writeCursor] = now
	r.writeCursor = (r.writeCursor + 1) % RingSize
	r.lastWriteTime = now
	r.mu.Unlock()
}

// Snapshot returns a copy of all slots taken at a single point in time.
// The copy aliases nothing; callers may keep it as long as they like.
func (r *TimestampRing) Snapshot() [RingSize]Timestamp {
	r.mu.Lock()
	s := r.slots
	r.mu.Unlock()
	return s
}

// LastWrite returns the timestamp of the most recent edge, or 0 if no
// edge has been seen yet.
func (r *TimestampRing) LastWrite() Timestamp {
	r.mu.Lock()
	t := r.lastWriteTime
	r.mu.Unlock()
	return t
}
