package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphDigits(t *testing.T) {
	// Spot-check a few patterns against the segment layout.
	assert.Equal(t, byte(0b00111111), Glyph('0'))
	assert.Equal(t, byte(0b00000110), Glyph('1'))
	assert.Equal(t, byte(0b01111111), Glyph('8'))
}

func TestGlyphUnknownIsBlank(t *testing.T) {
	assert.Equal(t, Blank, Glyph('z'))
	assert.Equal(t, Blank, Glyph('?'))
	assert.Equal(t, Blank, Glyph(0))
}

func TestGlyphBlankSentinel(t *testing.T) {
	assert.Equal(t, Blank, Glyph(' '))
	assert.Equal(t, byte(0), Blank)
}
