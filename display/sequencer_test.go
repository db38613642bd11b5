package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver records every strobe instead of touching hardware.
type fakeDriver struct {
	strobes []struct{ segments, digitSel byte }
	closed  bool
}

func (f *fakeDriver) Strobe(segments byte, digitSel byte) error {
	f.strobes = append(f.strobes, struct{ segments, digitSel byte }{segments, digitSel})
	return nil
}

func (f *fakeDriver) Close() error {
	f.closed = true
	return nil
}

func TestRenderDigitsZeroPads(t *testing.T) {
	s := NewSequencer(&fakeDriver{})
	s.RenderDigits(42)

	want := [NumDigits]byte{Glyph('0'), Glyph('0'), Glyph('4'), Glyph('2')}
	assert.Equal(t, want, s.buf)
}

func TestRenderDigitsOverflowKeepsLowDigits(t *testing.T) {
	s := NewSequencer(&fakeDriver{})
	s.RenderDigits(12345)

	want := [NumDigits]byte{Glyph('2'), Glyph('3'), Glyph('4'), Glyph('5')}
	assert.Equal(t, want, s.buf)
}

func TestTickRotatesPositions(t *testing.T) {
	drv := &fakeDriver{}
	s := NewSequencer(drv)
	s.RenderDigits(1234)

	// Five ticks: positions 0,1,2,3, then wrap back to 0. Exactly one
	// strobe per tick.
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Tick())
	}
	require.Len(t, drv.strobes, 5)

	wantSel := []byte{0x01, 0x02, 0x04, 0x08, 0x01}
	wantSeg := []byte{Glyph('1'), Glyph('2'), Glyph('3'), Glyph('4'), Glyph('1')}
	for i, st := range drv.strobes {
		assert.Equal(t, wantSel[i], st.digitSel, "tick %d digit select", i)
		assert.Equal(t, wantSeg[i], st.segments, "tick %d segments", i)
	}
}

func TestSetValueSkipsUnchanged(t *testing.T) {
	s := NewSequencer(&fakeDriver{})

	assert.True(t, s.SetValue(120), "first value renders")
	renders := s.renders

	assert.False(t, s.SetValue(120), "same value again must not re-render")
	assert.Equal(t, renders, s.renders, "no glyph work for an unchanged value")

	assert.True(t, s.SetValue(121))
	assert.Equal(t, renders+1, s.renders)
}

func TestSetValueZeroAfterStart(t *testing.T) {
	// 0 is a real value, not "unset": rendering it first still counts.
	s := NewSequencer(&fakeDriver{})

	assert.True(t, s.SetValue(0))
	assert.False(t, s.SetValue(0))
	want := [NumDigits]byte{Glyph('0'), Glyph('0'), Glyph('0'), Glyph('0')}
	assert.Equal(t, want, s.buf)
}
