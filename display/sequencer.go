package display

import "fmt"

// NumDigits is the width of the display.
const NumDigits = 4

// digitSelect holds the one-hot enable code for each display position,
// leftmost digit first.
var digitSelect = [NumDigits]byte{0x01, 0x02, 0x04, 0x08}

// Sequencer multiplexes the 4-digit display. It owns a small bitmap
// buffer and a rotating cursor; every Tick lights exactly one digit and
// moves on, so a caller ticking it fast enough produces a steady
// display without ever blocking. All state is owned by the main loop,
// no locking.
type Sequencer struct {
	drv Driver

	buf    [NumDigits]byte
	cursor uint

	haveValue bool
	lastValue int

	// renders counts glyph table passes, for the re-render debounce.
	renders uint
}

func NewSequencer(drv Driver) *Sequencer {
	return &Sequencer{drv: drv}
}

// RenderDigits formats value as 4 zero-padded decimal digits and fills
// the bitmap buffer from the glyph table. Values wider than the display
// show their low 4 digits. Characters without a glyph render blank.
func (s *Sequencer) RenderDigits(value int) {
	text := fmt.Sprintf("%04d", value)
	if len(text) > NumDigits {
		text = text[len(text)-NumDigits:]
	}
	for i := 0; i < NumDigits; i++ {
		s.buf[i] = Glyph(text[i])
	}
	s.renders++
}

// SetValue re-renders the buffer only when the value actually changed,
// so the steady-state loop does no formatting or table lookups at all.
// Reports whether a re-render happened.
func (s *Sequencer) SetValue(value int) bool {
	if s.haveValue && value == s.lastValue {
		return false
	}
	s.RenderDigits(value)
	s.lastValue = value
	s.haveValue = true
	return true
}

// Tick pushes the digit under the cursor to the hardware and advances.
// One strobe per call, bounded time, never waits.
func (s *Sequencer) Tick() error {
	pos := s.cursor % NumDigits
	err := s.drv.Strobe(s.buf[pos], digitSelect[pos])
	s.cursor++
	return err
}
