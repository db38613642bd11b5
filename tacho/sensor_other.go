//go:build !linux
// +build !linux

package tacho

import "errors"

// Sensor needs the Linux gpio character device. Other platforms get a
// stub so the rest of the module still compiles for tests.
type Sensor struct{}

func NewSensor(cfg SensorConfig, ring *TimestampRing) *Sensor {
	return &Sensor{}
}

func (s *Sensor) Start() error {
	return errors.New("sensor: gpio edge events are only supported on linux")
}

func (s *Sensor) Close() error {
	return nil
}
