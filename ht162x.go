// Package ht162x controls HT1622 and HT1625 segment LCD controllers over a
// bit-banged 3-wire bus (chip select, write strobe, data).
//
// See the examples for how to use this package.
package ht162x

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"periph.io/x/devices/v3/ht162x/segfont"
)

// Command codes, 8 bits each, sent inside a mode-100 frame.
const (
	cmdSysDisable   byte = 0x00
	cmdSysEnable    byte = 0x01
	cmdLCDOff       byte = 0x02
	cmdLCDOn        byte = 0x03
	cmdTimerDisable byte = 0x04
	cmdWDTDisable   byte = 0x05
	cmdToneOff      byte = 0x08
	cmdRCOsc        byte = 0x18 // select the on-chip 256kHz RC oscillator
	cmdTone4K1622   byte = 0x40
	cmdTone4K1625   byte = 0x60
	cmdIRQDisable   byte = 0x80
	cmdIRQEnable    byte = 0x88
)

// Payload width bounds for a data frame.
const (
	minDataBits = 4
	maxDataBits = 16
)

// The protocol is write-only, so every detectable failure is a caller-side
// precondition violation and is rejected before the first bit is clocked
// out. A frame can never be aborted mid-stream.
var (
	// ErrInvalidAddress is returned for a digit position, indicator, or raw
	// address outside the variant's addressable range.
	ErrInvalidAddress = errors.New("ht162x: address out of range")
	// ErrUnsupportedGlyph is returned for a character the font table does
	// not cover, or a non-decimal digit value.
	ErrUnsupportedGlyph = errors.New("ht162x: unsupported glyph")
	// ErrInvalidWidth is returned for a payload width outside [4,16] bits.
	ErrInvalidWidth = errors.New("ht162x: bit width out of range")
	// ErrHalted is returned once Halt has shut the controller down.
	ErrHalted = errors.New("ht162x: halted")
)

// Opts is the configuration for one controller instance.
type Opts struct {
	// Variant selects the controller subtype. Default: HT1622.
	Variant Variant

	// Backlight is an optional PWM-capable pin driving the panel backlight.
	Backlight gpio.PinOut
}

// Dev is the device handle for one HT162x controller. Several Devs may share
// one Bus, each with its own chip select line.
//
// The driver keeps no shadow of the segment RAM: the chip retains displayed
// state, so every write is independently idempotent given the same address
// and payload.
type Dev struct {
	bus       *Bus
	cs        gpio.PinOut
	backlight gpio.PinOut

	variant  Variant
	addrBits int
	topAddr  uint8
	toneCmd  byte
	digits   int

	halted bool
}

// New creates a device on the given bus and chip select pin and runs the
// power-up sequence: oscillator select, watchdog and timer disable, system
// enable, display off, then a full RAM clear. The display is left off; call
// PowerOn to show it.
//
// opts can be nil to use defaults (HT1622, no backlight).
func New(b *Bus, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if b == nil || cs == nil {
		return nil, errors.New("ht162x: bus and chip select pin are required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if int(opts.Variant) < 0 || int(opts.Variant) >= len(variantTable) {
		return nil, fmt.Errorf("ht162x: unknown variant %d", int(opts.Variant))
	}

	p := variantTable[opts.Variant]
	d := &Dev{
		bus:       b,
		cs:        cs,
		backlight: opts.Backlight,
		variant:   opts.Variant,
		addrBits:  p.addrBits,
		topAddr:   p.topAddr,
		toneCmd:   p.toneCmd,
		digits:    p.digits,
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init brings the chip from power-up to a cleared, display-off state. The
// oscillator must be selected before the system is enabled; enabling the
// display with no clock source yields undefined output.
func (d *Dev) init() error {
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("ht162x: failed to release chip select: %w", err)
	}
	time.Sleep(resetDelay)

	for _, cmd := range [...]byte{cmdRCOsc, cmdWDTDisable, cmdTimerDisable, cmdSysEnable, cmdLCDOff} {
		if err := d.command(cmd); err != nil {
			return fmt.Errorf("ht162x: init command %#02x: %w", cmd, err)
		}
	}
	return d.Clear()
}

// command sends a single command frame.
func (d *Dev) command(cmd byte) error {
	return d.bus.sendCommand(d.cs, cmd)
}

// write sends a single data frame using the variant's address field width.
func (d *Dev) write(addr uint8, data uint16, bits int) error {
	return d.bus.writeData(d.cs, d.addrBits, addr, data, bits)
}

// Variant returns the controller subtype this device was configured for.
func (d *Dev) Variant() Variant {
	return d.variant
}

// Digits returns the number of numeric positions on the glass.
func (d *Dev) Digits() int {
	return d.digits
}

// PowerOn turns the LCD output on. The system oscillator state is not
// affected.
func (d *Dev) PowerOn() error {
	if d.halted {
		return ErrHalted
	}
	return d.command(cmdLCDOn)
}

// PowerOff turns the LCD output off without disabling the system oscillator,
// so displayed state survives in the controller RAM.
func (d *Dev) PowerOff() error {
	if d.halted {
		return ErrHalted
	}
	return d.command(cmdLCDOff)
}

// AllSegments writes every nibble of the controller's segment RAM all-set or
// all-clear. Useful as a lamp test.
func (d *Dev) AllSegments(on bool) error {
	if d.halted {
		return ErrHalted
	}
	var v uint16
	if on {
		v = 0b1111
	}
	for addr := 0; addr <= int(d.topAddr); addr++ {
		if err := d.write(uint8(addr), v, minDataBits); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the whole display RAM.
func (d *Dev) Clear() error {
	return d.AllSegments(false)
}

// WriteChar renders a single character at a digit position of the HT1622
// glass. The position is validated against the glass layout and the
// character against the font table before anything is transmitted.
func (d *Dev) WriteChar(pos int, r rune) error {
	if d.halted {
		return ErrHalted
	}
	if d.variant != HT1622 {
		return fmt.Errorf("%w: %s has no alphanumeric positions", ErrInvalidAddress, d.variant)
	}
	if pos < 0 || pos >= d.digits {
		return fmt.Errorf("%w: position %d", ErrInvalidAddress, pos)
	}
	g, ok := segfont.Lookup(r)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedGlyph, r)
	}
	return d.write(ht1622DigitAddress(pos), uint16(g), maxDataBits)
}

// WriteString renders msg left-aligned across the HT1622 digit positions,
// blanking any remainder. The whole message is validated against the font
// table before the first frame is sent.
func (d *Dev) WriteString(msg string) error {
	if d.halted {
		return ErrHalted
	}
	if d.variant != HT1622 {
		return fmt.Errorf("%w: %s has no alphanumeric positions", ErrInvalidAddress, d.variant)
	}
	runes := []rune(msg)
	if len(runes) > d.digits {
		return fmt.Errorf("%w: message of %d runes exceeds %d positions", ErrInvalidAddress, len(runes), d.digits)
	}

	glyphs := make([]segfont.Pattern, d.digits)
	for i, r := range runes {
		g, ok := segfont.Lookup(r)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedGlyph, r)
		}
		glyphs[i] = g
	}

	for i, g := range glyphs {
		if err := d.write(ht1622DigitAddress(i), uint16(g), maxDataBits); err != nil {
			return err
		}
	}
	return nil
}

// WriteDigit renders a decimal digit at a numeric position. On the HT1622 it
// is one 16-bit glyph write; on the HT1625 the segment layout straddles two
// nibble addresses, so it is two 4-bit writes.
func (d *Dev) WriteDigit(pos, value int) error {
	if d.halted {
		return ErrHalted
	}
	if pos < 0 || pos >= d.digits {
		return fmt.Errorf("%w: position %d", ErrInvalidAddress, pos)
	}
	if value < 0 || value > 9 {
		return fmt.Errorf("%w: digit value %d", ErrUnsupportedGlyph, value)
	}

	if d.variant == HT1622 {
		return d.WriteChar(pos, rune('0'+value))
	}

	lo, hi := ht1625DigitAddresses(pos)
	seg := ht1625DigitSegments[value]
	if err := d.write(lo, uint16(seg.lo), minDataBits); err != nil {
		return err
	}
	return d.write(hi, uint16(seg.hi), minDataBits)
}

// SetIndicator turns a named HT1625 element on or off.
func (d *Dev) SetIndicator(ind Indicator, on bool) error {
	if d.halted {
		return ErrHalted
	}
	if d.variant != HT1625 {
		return fmt.Errorf("%w: %s has no named indicators", ErrInvalidAddress, d.variant)
	}
	if ind < 0 || ind >= indicatorCount {
		return fmt.Errorf("%w: indicator %d", ErrInvalidAddress, int(ind))
	}
	v := uint16(indicatorOff)
	if on {
		v = indicatorOn
	}
	return d.write(indicatorAddr[ind], v, minDataBits)
}

// WriteRaw writes bits of data at a raw controller address. It is the
// validated escape hatch for glass layouts this package does not model.
func (d *Dev) WriteRaw(addr uint8, data uint16, bits int) error {
	if d.halted {
		return ErrHalted
	}
	if addr > d.topAddr {
		return fmt.Errorf("%w: %#02x above %#02x", ErrInvalidAddress, addr, d.topAddr)
	}
	if bits < minDataBits || bits > maxDataBits {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, bits)
	}
	return d.write(addr, data, bits)
}

// Tone turns the controller's 4kHz tone output on or off. The tone-on
// command code differs between the two variants.
func (d *Dev) Tone(on bool) error {
	if d.halted {
		return ErrHalted
	}
	if on {
		return d.command(d.toneCmd)
	}
	return d.command(cmdToneOff)
}

// Backlight sets the panel backlight intensity (0-255) via PWM on the
// optional backlight pin.
func (d *Dev) Backlight(intensity display.Intensity) error {
	if d.backlight == nil {
		return errors.New("ht162x: no backlight pin configured")
	}
	duty := gpio.Duty(int64(intensity) * int64(gpio.DutyMax) / 255)
	return d.backlight.PWM(duty, 200*physic.Hertz)
}

// Halt blanks the display, turns it off, and disables the system oscillator.
// After calling Halt the device rejects further operations until it is
// re-created.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.command(cmdLCDOff); err != nil {
		return err
	}
	if err := d.command(cmdSysDisable); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ht162x.Dev{%s, %s}", d.variant, d.cs)
}

var (
	_ conn.Resource            = &Dev{}
	_ display.DisplayBacklight = &Dev{}
)
