package ht162x

import "fmt"

// Variant selects the controller subtype. The two variants differ in the
// width of the address field on the wire and in how display elements are
// wired to controller addresses.
//
// The address field width is fixed by the chip, not by the magnitude of the
// addresses in use: the HT1625 clocks 7 address bits even for addresses that
// would fit in 6.
type Variant int

const (
	// HT1622 drives the alphanumeric glass: 15 16-segment digit positions,
	// one 16-bit write per position, 6-bit addresses up to 0x3F.
	HT1622 Variant = iota
	// HT1625 drives the element-scattered glass: named indicator elements
	// and 7-segment numeric positions split across two nibble addresses,
	// 7-bit addresses up to 0x51.
	HT1625
)

func (v Variant) String() string {
	switch v {
	case HT1622:
		return "HT1622"
	case HT1625:
		return "HT1625"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Per-variant wire parameters, dispatched once per operation instead of
// branching at every call site.
type variantParams struct {
	addrBits int   // width of the address field on the wire
	topAddr  uint8 // highest addressable nibble
	toneCmd  byte  // 4kHz tone-on command code
	digits   int   // numeric positions on the glass
}

var variantTable = [...]variantParams{
	HT1622: {addrBits: 6, topAddr: 0x3F, toneCmd: cmdTone4K1622, digits: ht1622Digits},
	HT1625: {addrBits: 7, topAddr: 0x51, toneCmd: cmdTone4K1625, digits: ht1625Digits},
}

// HT1622 glass wiring: digit position i occupies the 16-bit slot at
// 0x04 + 4*i. Four nibble addresses per position, written in one frame.
const (
	ht1622DigitBase   = 0x04
	ht1622DigitStride = 4
	ht1622Digits      = 15
)

func ht1622DigitAddress(pos int) uint8 {
	return ht1622DigitBase + ht1622DigitStride*uint8(pos)
}

// HT1625 glass wiring: numeric position i uses two consecutive nibble
// addresses starting at 0x08. The 7-segment layout does not fit the chip's
// nibble boundaries, so each digit is two 4-bit writes.
const (
	ht1625DigitBase = 0x08
	ht1625Digits    = 4
)

func ht1625DigitAddresses(pos int) (lo, hi uint8) {
	lo = ht1625DigitBase + 2*uint8(pos)
	return lo, lo + 1
}

// ht1625DigitSegments maps a decimal digit to the two nibbles written at its
// low and high addresses. Low nibble carries segments a-d (bit 0 = a), high
// nibble carries e, f, g (bit 0 = e).
var ht1625DigitSegments = [10]struct{ lo, hi uint8 }{
	{0b1111, 0b011}, // 0: abcdef
	{0b0110, 0b000}, // 1: bc
	{0b1011, 0b101}, // 2: abdeg
	{0b1111, 0b100}, // 3: abcdg
	{0b0110, 0b110}, // 4: bcfg
	{0b1101, 0b110}, // 5: acdfg
	{0b1101, 0b111}, // 6: acdefg
	{0b0111, 0b000}, // 7: abc
	{0b1111, 0b111}, // 8: abcdefg
	{0b1111, 0b110}, // 9: abcdfg
}

// Indicator names a discrete element on the HT1625 glass.
type Indicator int

const (
	Heart      Indicator = iota // heartbeat symbol, top left
	Pulse                       // pulse wave symbol next to the heart
	TimeLabel                   // "TIME" caption above the numeric field
	SpeedLabel                  // "SPEED" caption above the numeric field
	Colon                       // colon between numeric pairs
	indicatorCount
)

func (i Indicator) String() string {
	switch i {
	case Heart:
		return "Heart"
	case Pulse:
		return "Pulse"
	case TimeLabel:
		return "TimeLabel"
	case SpeedLabel:
		return "SpeedLabel"
	case Colon:
		return "Colon"
	}
	return fmt.Sprintf("Indicator(%d)", int(i))
}

// Each indicator is a single segment at a fixed address; writing the nibble
// with bit 2 set turns it on, all-clear turns it off. The addresses come
// from the glass wiring, not from the controller, so they are scattered.
const (
	indicatorOn  = 0b0100
	indicatorOff = 0b0000
)

var indicatorAddr = [indicatorCount]uint8{
	Heart:      0b0000001, // 0x01
	Pulse:      0b0000011, // 0x03
	TimeLabel:  0b1001100, // 0x4C
	SpeedLabel: 0b1001110, // 0x4E
	Colon:      0b0101001, // 0x29
}
