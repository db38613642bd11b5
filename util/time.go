package util

import (
	"time"

	"golang.org/x/sys/unix"
)

var (
	UpSince = time.Now()

	// Millisecond reading of CLOCK_MONOTONIC taken at process start.
	// Millis() is relative to this so the counter starts near zero,
	// like a microcontroller millis() would.
	bootMillis = monotonicMillis()
)

// monotonicMillis reads CLOCK_MONOTONIC and flattens it to milliseconds.
func monotonicMillis() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// Fall back to the runtime clock. Should not happen on a
		// vDSO-backed kernel.
		return uint64(time.Now().UnixMilli())
	}
	return uint64(ts.Sec)*1000 + uint64(ts.Nsec)/1000000
}

// Millis returns the monotonic millisecond counter since process start.
// It wraps at 32 bits (about 49.7 days); all consumers must compare
// timestamps with ElapsedMillis rather than plain ordering.
func Millis() uint32 {
	return uint32(monotonicMillis() - bootMillis)
}

// ElapsedMillis returns the number of milliseconds from then to now on
// the wrapping 32-bit clock. Modular subtraction makes the result
// correct across a counter wrap as long as the real distance is under
// 2^32 ms.
func ElapsedMillis(now uint32, then uint32) uint32 {
	return now - then
}

func UptimeInString() string {
	return time.Since(UpSince).String()
}
