package display

import (
	"fmt"

	"gobot.io/x/gobot/sysfs"
)

// SysfsDriver drives the shift register chain through /sys/class/gpio.
// Much slower than GpioDriver but works on kernels where the gpio
// character device is missing or the pins are not in the periph
// registry. Selected with the sysfs pin driver config.
type SysfsDriver struct {
	clock *sysfs.DigitalPin
	latch *sysfs.DigitalPin
	data  *sysfs.DigitalPin
}

func NewSysfsDriver(clockPin, latchPin, dataPin int) (*SysfsDriver, error) {
	d := &SysfsDriver{}
	for _, p := range []struct {
		pin  int
		dest **sysfs.DigitalPin
	}{
		{clockPin, &d.clock},
		{latchPin, &d.latch},
		{dataPin, &d.data},
	} {
		pin := sysfs.NewDigitalPin(p.pin)
		if err := pin.Export(); err != nil {
			return nil, fmt.Errorf("display: export pin %d: %w", p.pin, err)
		}
		if err := pin.Direction("out"); err != nil {
			return nil, fmt.Errorf("display: direction pin %d: %w", p.pin, err)
		}
		if err := pin.Write(0); err != nil {
			return nil, fmt.Errorf("display: init pin %d: %w", p.pin, err)
		}
		*p.dest = pin
	}

	return d, nil
}

func (d *SysfsDriver) Strobe(segments byte, digitSel byte) error {
	if err := d.latch.Write(0); err != nil {
		return err
	}
	if err := d.shiftOut(segments); err != nil {
		return err
	}
	if err := d.shiftOut(digitSel); err != nil {
		return err
	}
	return d.latch.Write(1)
}

func (d *SysfsDriver) shiftOut(b byte) error {
	for i := 7; i >= 0; i-- {
		bit := 0
		if b&(1<<uint(i)) != 0 {
			bit = 1
		}
		if err := d.data.Write(bit); err != nil {
			return err
		}
		if err := d.clock.Write(1); err != nil {
			return err
		}
		if err := d.clock.Write(0); err != nil {
			return err
		}
	}
	return nil
}

func (d *SysfsDriver) Close() error {
	err := d.Strobe(Blank, 0)
	for _, pin := range []*sysfs.DigitalPin{d.clock, d.latch, d.data} {
		_ = pin.Unexport()
	}
	return err
}
