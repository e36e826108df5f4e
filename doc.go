// Package ht162x controls Holtek HT1622 and HT1625 segment LCD controllers.
//
// The HT162x family drives segment/common-matrix liquid crystal glass and is
// written to over a synchronous 3-wire bus: chip select, write strobe, and
// data, bit-banged on plain GPIO lines. The protocol is write-only; there is
// no acknowledgment or read-back channel.
//
// # Supported variants
//
//   - HT1622: 6-bit addresses up to 0x3F. Used here for an alphanumeric
//     glass with 15 14-segment digit positions, one 16-bit write each.
//   - HT1625: 7-bit addresses up to 0x51. Used here for an element-scattered
//     glass with named indicator symbols and 7-segment numeric positions
//     that straddle two nibble addresses.
//
// The address field width is a property of the chip, not of the addresses in
// use: the HT1625 always clocks 7 address bits.
//
// # Hardware Connection
//
// Connect the controller to three GPIO outputs:
//
//	Controller Pin → System Pin
//	VDD            → 3.3V or 5V
//	VSS            → GND
//	CS             → GPIO (one per controller)
//	WR             → GPIO (shared between controllers)
//	DATA           → GPIO (shared between controllers)
//	LED+           → Optional: PWM-capable GPIO for the backlight
//
// Several controllers may share the WR and DATA lines as long as each has
// its own CS line; create one Bus and one Dev per controller.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/ht162x"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// The shared bus lines
//		bus := ht162x.NewBus(gpioreg.ByName("GPIO17"), gpioreg.ByName("GPIO27"))
//
//		// One device per controller
//		dev, _ := ht162x.New(bus, gpioreg.ByName("GPIO22"), &ht162x.Opts{
//			Variant: ht162x.HT1622,
//		})
//		defer dev.Halt()
//
//		dev.PowerOn()
//		dev.WriteString("HELLO")
//	}
//
// # Rendering
//
// On the HT1622 glass, WriteChar and WriteString render characters through
// the segfont glyph table, and WriteDigit is a convenience for decimal
// values. On the HT1625 glass, WriteDigit writes the two nibbles of a
// 7-segment position and SetIndicator drives the named symbols (Heart,
// Pulse, TimeLabel, SpeedLabel, Colon).
//
// AllSegments(true) is a lamp test that lights every segment the controller
// can address; Clear blanks the whole display RAM.
//
// WriteRaw writes an arbitrary payload at a raw controller address for glass
// layouts this package does not model. The address and payload width are
// validated against the variant before anything is transmitted.
//
// # Errors
//
// All failures are caller-side precondition violations, detected before the
// first bit reaches the wire: ErrInvalidAddress, ErrUnsupportedGlyph,
// ErrInvalidWidth, and ErrHalted after the device is shut down. Once a frame
// starts it always runs to completion; there is no mid-frame abort in the
// protocol.
//
// # Concurrency
//
// A Bus serializes whole frames with a mutex spanning chip select assert to
// release. Devs sharing a Bus may therefore be used from separate goroutines
// without interleaving bits, though the usual deployment is a single loop.
//
// # Backlight
//
// If a PWM-capable pin is supplied in Opts, the Dev implements
// display.DisplayBacklight with a 0-255 intensity scale.
//
// # Datasheet
//
// https://www.holtek.com/page/vg/HT1622
package ht162x
