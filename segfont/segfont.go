// Package segfont provides the 14-segment glyph table for the HT1622
// alphanumeric glass.
//
// Each glyph is a 16-bit segment mask matching the glass wiring. The driver
// bit-reverses the mask at transmission time because the controller shifts
// data in least significant bit first.
package segfont

// Pattern is a 16-bit segment-on mask for one digit position.
type Pattern uint16

// Segment bit assignments for the glass wiring. The two horizontal bars are
// split (g1/g2), the centre verticals are i (top) and l (bottom), and
// h/j/k/m are the four diagonals clockwise from top left.
const (
	segA  Pattern = 1 << 14 // top bar
	segB  Pattern = 1 << 11 // top right vertical
	segC  Pattern = 1 << 3  // bottom right vertical
	segD  Pattern = 1 << 0  // bottom bar
	segE  Pattern = 1 << 6  // bottom left vertical
	segF  Pattern = 1 << 12 // top left vertical
	segG1 Pattern = 1 << 9  // centre bar, left half
	segG2 Pattern = 1 << 2  // centre bar, right half
	segH  Pattern = 1 << 15 // top left diagonal
	segI  Pattern = 1 << 13 // top centre vertical
	segJ  Pattern = 1 << 10 // top right diagonal
	segK  Pattern = 1 << 8  // bottom left diagonal
	segL  Pattern = 1 << 5  // bottom centre vertical
	segM  Pattern = 1 << 7  // bottom right diagonal
	segDP Pattern = 1 << 1  // decimal point
)

// Blank is the all-segments-off pattern.
const Blank Pattern = 0

var digits = [10]Pattern{
	segA | segB | segC | segD | segE | segF,                // 0
	segB | segC,                                            // 1
	segA | segB | segD | segE | segG1 | segG2,              // 2
	segA | segB | segC | segD | segG1 | segG2,              // 3
	segB | segC | segF | segG1 | segG2,                     // 4
	segA | segC | segD | segF | segG1 | segG2,              // 5
	segA | segC | segD | segE | segF | segG1 | segG2,       // 6
	segA | segB | segC,                                     // 7
	segA | segB | segC | segD | segE | segF | segG1 | segG2, // 8
	segA | segB | segC | segD | segF | segG1 | segG2,       // 9
}

var letters = [26]Pattern{
	segA | segB | segC | segE | segF | segG1 | segG2,        // A
	segA | segB | segC | segD | segG2 | segI | segL,         // B
	segA | segD | segE | segF,                               // C
	segA | segB | segC | segD | segI | segL,                 // D
	segA | segD | segE | segF | segG1,                       // E
	segA | segE | segF | segG1,                              // F
	segA | segC | segD | segE | segF | segG2,                // G
	segB | segC | segE | segF | segG1 | segG2,               // H
	segA | segD | segI | segL,                               // I
	segB | segC | segD | segE,                               // J
	segE | segF | segG1 | segJ | segM,                       // K
	segD | segE | segF,                                      // L
	segB | segC | segE | segF | segH | segJ,                 // M
	segB | segC | segE | segF | segH | segM,                 // N
	segA | segB | segC | segD | segE | segF,                 // O
	segA | segB | segE | segF | segG1 | segG2,               // P
	segA | segB | segC | segD | segE | segF | segM,          // Q
	segA | segB | segE | segF | segG1 | segG2 | segM,        // R
	segA | segC | segD | segF | segG1 | segG2,               // S
	segA | segI | segL,                                      // T
	segB | segC | segD | segE | segF,                        // U
	segE | segF | segJ | segK,                               // V
	segB | segC | segE | segF | segK | segM,                 // W
	segH | segJ | segK | segM,                               // X
	segH | segJ | segL,                                      // Y
	segA | segD | segJ | segK,                               // Z
}

// Lookup returns the glyph for r. Lowercase letters fold to their uppercase
// glyph. The second return is false for characters the glass cannot render.
func Lookup(r rune) (Pattern, bool) {
	switch {
	case r >= '0' && r <= '9':
		return digits[r-'0'], true
	case r >= 'A' && r <= 'Z':
		return letters[r-'A'], true
	case r >= 'a' && r <= 'z':
		return letters[r-'a'], true
	}
	switch r {
	case ' ':
		return Blank, true
	case '-':
		return segG1 | segG2, true
	case '.':
		return segDP, true
	}
	return 0, false
}

// Digit returns the glyph for a decimal digit value 0-9.
func Digit(n int) (Pattern, bool) {
	if n < 0 || n > 9 {
		return 0, false
	}
	return digits[n], true
}
