package display

// Driver pushes one digit's worth of data to the two daisy-chained
// shift registers: the segment pattern into the far register, the
// one-hot digit select into the near one, then a single latch pulse so
// both outputs change together. Implementations must be fast enough to
// run once per main loop pass.
type Driver interface {
	Strobe(segments byte, digitSel byte) error
	Close() error
}
