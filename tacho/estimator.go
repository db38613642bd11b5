package tacho

// DefaultMaxStampAge is the age in milliseconds past which an edge no
// longer counts towards the speed estimate. When the shaft stops, the
// window empties itself within this time and the estimate drops to 0.
const DefaultMaxStampAge = 6000

// Estimator computes RPM from a snapshot of the edge timestamp ring.
// One edge per revolution is assumed (single magnet pass).
type Estimator struct {
	ring *TimestampRing

	// MaxStampAge is the validity cutoff in milliseconds.
	MaxStampAge uint32
}

func NewEstimator(ring *TimestampRing) *Estimator {
	return &Estimator{
		ring:        ring,
		MaxStampAge: DefaultMaxStampAge,
	}
}

// Compute returns the average RPM over the valid part of the edge
// window, or 0 when no interval can be established. It never fails:
// insufficient data, a degenerate zero-length interval and a fully
// aged-out window all report as 0.
func (e *Estimator) Compute(now Timestamp) int {
	window := e.ring.Snapshot()

	var low, high Timestamp
	count := 0
	for _, t := range window {
		if t == 0 {
			// Never-written slot. A real timestamp of 0 can only
			// occur at counter wrap and costs one sample there.
			continue
		}
		age := uint32(now - t) // modular, wrap-safe
		if age >= e.MaxStampAge {
			continue
		}
		if count == 0 || t < low {
			low = t
		}
		if count == 0 || t > high {
			high = t
		}
		count++
	}

	if count <= 1 {
		return 0
	}

	elapsedSec := float64(high-low) / 1000.0
	if elapsedSec == 0 {
		// All valid edges carry the same timestamp. Report stopped
		// rather than dividing by zero.
		return 0
	}

	revolutions := count - 1
	return int(float64(revolutions)/elapsedSec*60.0 + 0.5)
}
