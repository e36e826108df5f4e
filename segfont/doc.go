// Package segfont provides the 14-segment glyph table for the HT1622 alphanumeric glass.
//
// The glass has 15 digit positions, each a 14-segment starburst element plus
// a decimal point, driven by one 16-bit write per position. A glyph is a
// Pattern: a 16-bit mask with one bit per segment, laid out to match the
// glass wiring rather than any standard ordering.
//
// Segment naming follows the usual 14-segment convention:
//
//	 _a_
//	|\|/|      f, h, i, j, b around the top half
//	 - -       g1, g2 centre bars
//	|/|\|      e, k, l, m, c around the bottom half
//	 _d_  .    d bottom bar, dp decimal point
//
// The table covers the decimal digits, a small symbol set (space, dash,
// decimal point) and the uppercase letters; lowercase input folds to the
// uppercase glyph.
//
// Example usage:
//
//	g, ok := segfont.Lookup('A')
//	if !ok {
//		// character not on the glass
//	}
//	// g == 0x5A4C for this wiring
//
// The mask is supplied most significant bit first; the driver mirrors it at
// transmission time to match the controller's shift direction.
package segfont
