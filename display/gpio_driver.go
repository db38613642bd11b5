package display

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GpioDriver bit-bangs the shift register chain through periph.io pins.
// This is the default driver on boards with a working gpio memory map
// or character device.
type GpioDriver struct {
	clock gpio.PinIO
	latch gpio.PinIO
	data  gpio.PinIO
}

// NewGpioDriver resolves the three output pins by number and drives
// them low. host.Init is safe to call more than once.
func NewGpioDriver(clockPin, latchPin, dataPin int) (*GpioDriver, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	d := &GpioDriver{}
	for _, p := range []struct {
		pin  int
		dest *gpio.PinIO
	}{
		{clockPin, &d.clock},
		{latchPin, &d.latch},
		{dataPin, &d.data},
	} {
		pin := gpioreg.ByName(strconv.Itoa(p.pin))
		if pin == nil {
			return nil, fmt.Errorf("display: no gpio pin %d", p.pin)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("display: init pin %d: %w", p.pin, err)
		}
		*p.dest = pin
	}

	return d, nil
}

// Strobe clocks out 16 bits and latches them. Segments go first so
// they end up in the far register of the chain.
func (d *GpioDriver) Strobe(segments byte, digitSel byte) error {
	if err := d.latch.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.shiftOut(segments); err != nil {
		return err
	}
	if err := d.shiftOut(digitSel); err != nil {
		return err
	}
	return d.latch.Out(gpio.High)
}

// shiftOut pushes one byte MSB first, data valid on the rising clock.
func (d *GpioDriver) shiftOut(b byte) error {
	for i := 7; i >= 0; i-- {
		level := gpio.Low
		if b&(1<<uint(i)) != 0 {
			level = gpio.High
		}
		if err := d.data.Out(level); err != nil {
			return err
		}
		if err := d.clock.Out(gpio.High); err != nil {
			return err
		}
		if err := d.clock.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

func (d *GpioDriver) Close() error {
	// Leave the display dark rather than frozen on the last digit.
	return d.Strobe(Blank, 0)
}
