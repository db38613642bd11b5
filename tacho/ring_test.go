package tacho

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOverwritesOldest(t *testing.T) {
	r := &TimestampRing{}

	for i := Timestamp(1); i <= RingSize; i++ {
		r.Record(i * 100)
	}
	assert.Equal(t, [RingSize]Timestamp{100, 200, 300, 400, 500}, r.Snapshot())

	// Next write lands on the oldest slot.
	r.Record(600)
	assert.Equal(t, [RingSize]Timestamp{600, 200, 300, 400, 500}, r.Snapshot())
	assert.Equal(t, Timestamp(600), r.LastWrite())
}

func TestSnapshotIsACopy(t *testing.T) {
	r := &TimestampRing{}
	r.Record(42)

	s := r.Snapshot()
	s[0] = 9999

	assert.Equal(t, Timestamp(42), r.Snapshot()[0], "mutating a snapshot must not touch the ring")
}

func TestLastWriteEmpty(t *testing.T) {
	r := &TimestampRing{}
	assert.Equal(t, Timestamp(0), r.LastWrite())
}

// TestSnapshotNeverTorn hammers Record from a writer goroutine while
// snapshotting from the test goroutine. Every snapshot must be a ring
// state that existed at one point in time: all nonzero values come from
// the written sequence, and the newest value in any snapshot never goes
// backwards between consecutive snapshots.
func TestSnapshotNeverTorn(t *testing.T) {
	const writes = 20000

	r := &TimestampRing{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := Timestamp(1); i <= writes; i++ {
			r.Record(i)
		}
	}()

	var prevNewest Timestamp
	for {
		s := r.Snapshot()

		var newest Timestamp
		for _, v := range s {
			require.LessOrEqual(t, v, Timestamp(writes), "value outside the written sequence")
			if v > newest {
				newest = v
			}
		}
		require.GreaterOrEqual(t, newest, prevNewest, "snapshot went back in time")
		prevNewest = newest

		if newest == writes {
			break
		}
	}
	wg.Wait()

	// Final state holds the last RingSize writes.
	final := r.Snapshot()
	for _, v := range final {
		assert.Greater(t, v, Timestamp(writes-RingSize))
	}
}
