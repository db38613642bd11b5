//go:build linux
// +build linux

package tacho

import (
	"fmt"

	"github.com/warthog618/gpiod"

	"github.com/hbilar/arduino-rpm-counter/util"
)

// Sensor owns the requested GPIO line and feeds falling edges into the
// ring. The gpiod event handler runs on its own goroutine, which is the
// nearest Linux equivalent of the edge interrupt on an MCU: it can
// fire at any point relative to the main loop, so it touches nothing
// but the ring.
type Sensor struct {
	cfg  SensorConfig
	ring *TimestampRing
	line *gpiod.Line

	// now is the clock used to stamp edges. Overridable in tests.
	now func() uint32
}

func NewSensor(cfg SensorConfig, ring *TimestampRing) *Sensor {
	return &Sensor{
		cfg:  cfg,
		ring: ring,
		now:  util.Millis,
	}
}

// Start requests the line with falling edge detection and registers the
// event handler. The handler does nothing besides one ring write.
func (s *Sensor) Start() error {
	line, err := gpiod.RequestLine(s.cfg.Chip, s.cfg.Pin,
		gpiod.WithPullUp,
		gpiod.WithFallingEdge,
		gpiod.WithEventHandler(s.handleEdge))
	if err != nil {
		return fmt.Errorf("sensor: request %s pin %d: %w", s.cfg.Chip, s.cfg.Pin, err)
	}

	s.line = line
	return nil
}

func (s *Sensor) handleEdge(evt gpiod.LineEvent) {
	if evt.Type != gpiod.LineEventFallingEdge {
		return
	}
	s.ring.Record(Timestamp(s.now()))
}

func (s *Sensor) Close() error {
	if s.line == nil {
		return nil
	}
	return s.line.Close()
}
