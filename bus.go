package ht162x

import (
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Write mode prefixes. Every frame opens with one of these 3-bit tags.
const (
	modeCommand = 0b100
	modeData    = 0b101
)

// Minimum timings from the HT1622/HT1625 datasheets. Longer is always safe.
const (
	setupDelay = 1 * time.Microsecond // around chip select transitions
	clockDelay = 2 * time.Microsecond // each half of the WR strobe
	holdDelay  = 1 * time.Microsecond // after the last bit, before CS release
	resetDelay = 1 * time.Millisecond // after power-up, before the first command
)

// Bus is the WR/DATA pin pair shared by every controller on the glass.
// Each controller has its own chip select line, held by its Dev; the Bus
// serializes whole frames so that co-resident controllers never interleave
// bits. A frame, once started, always runs to completion: the protocol has
// no way to abort mid-stream without corrupting the controller's address
// counter.
type Bus struct {
	mu   sync.Mutex
	wr   gpio.PinOut
	data gpio.PinOut
}

// NewBus returns a Bus driving the given write-strobe and data pins.
func NewBus(wr, data gpio.PinOut) *Bus {
	return &Bus{wr: wr, data: data}
}

// sendBits clocks out the low bits of value, most significant first, one bit
// per WR strobe. bits must be in [1,16]; exported callers validate before any
// pin is touched.
func (b *Bus) sendBits(value uint16, bits int) error {
	for mask := uint16(1) << (bits - 1); mask != 0; mask >>= 1 {
		if err := b.wr.Out(gpio.Low); err != nil {
			return err
		}
		if err := b.data.Out(gpio.Level(value&mask != 0)); err != nil {
			return err
		}
		time.Sleep(clockDelay)
		// The controller samples DATA on the rising edge.
		if err := b.wr.Out(gpio.High); err != nil {
			return err
		}
		time.Sleep(clockDelay)
	}
	return nil
}

// sendCommand transmits one command frame to the controller selected by cs:
// mode prefix 100, the 8-bit command code, and a trailing bit the chip
// treats as don't-care (fixed high by convention). 12 bits on the wire.
func (b *Bus) sendCommand(cs gpio.PinOut, cmd byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.assert(cs); err != nil {
		return err
	}
	if err := b.sendBits(modeCommand, 3); err != nil {
		return err
	}
	if err := b.sendBits(uint16(cmd), 8); err != nil {
		return err
	}
	if err := b.sendBits(1, 1); err != nil {
		return err
	}
	return b.release(cs)
}

// writeData transmits one data frame: mode prefix 101, the address in
// addrBits bits (6 or 7 depending on the chip variant, never derived from
// the address value), then the payload.
//
// The payload is bit-reversed first. Callers supply segment masks most
// significant bit first, while the controller shifts data in from the low
// end; without the reversal every write lands mirrored. A width mismatch
// here would silently misalign all subsequent writes in the frame, so bits
// is validated by the exported callers before transmission starts.
func (b *Bus) writeData(cs gpio.PinOut, addrBits int, addr uint8, data uint16, bits int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.assert(cs); err != nil {
		return err
	}
	if err := b.sendBits(modeData, 3); err != nil {
		return err
	}
	if err := b.sendBits(uint16(addr), addrBits); err != nil {
		return err
	}
	if err := b.sendBits(reverseBits(data, bits), bits); err != nil {
		return err
	}
	return b.release(cs)
}

// assert pulls the chip select low and waits out the setup time.
func (b *Bus) assert(cs gpio.PinOut) error {
	if err := cs.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(setupDelay)
	return nil
}

// release waits out the hold time and returns the chip select high.
func (b *Bus) release(cs gpio.PinOut) error {
	time.Sleep(holdDelay)
	return cs.Out(gpio.High)
}

// reverseBits mirrors the low bits of v within the given width. Applying it
// twice with the same width is the identity on those bits.
func reverseBits(v uint16, bits int) uint16 {
	var r uint16
	for i := 0; i < bits; i++ {
		r = r<<1 | v&1
		v >>= 1
	}
	return r
}
