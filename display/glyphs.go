package display

// Blank is the all-segments-off pattern. Any character without a glyph
// renders as Blank instead of failing.
const Blank byte = 0x00

// Segment bit layout, matching the shift register wiring:
//
//	bit:      7  6 5 4 3 2 1 0
//	segment: DP  G F E D C B A
var glyphs = map[byte]byte{
	' ': 0b00000000,
	'-': 0b01000000,
	'0': 0b00111111,
	'1': 0b00000110,
	'2': 0b01011011,
	'3': 0b01001111,
	'4': 0b01100110,
	'5': 0b01101101,
	'6': 0b01111101,
	'7': 0b00000111,
	'8': 0b01111111,
	'9': 0b01101111,
	'A': 0b01110111,
	'C': 0b00111001,
	'E': 0b01111001,
	'F': 0b01110001,
	'H': 0b01110110,
	'L': 0b00111000,
	'P': 0b01110011,
}

// Glyph maps a character to its segment pattern. Unknown characters
// come back as Blank.
func Glyph(c byte) byte {
	g, ok := glyphs[c]
	if !ok {
		return Blank
	}
	return g
}
