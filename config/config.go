package config

import (
	log "github.com/hbilar/arduino-rpm-counter/log"
)

const (
	PinDriverPeriph = "periph"
	PinDriverSysfs  = "sysfs"

	// DefaultMaxStampAge is the sample validity cutoff in ms. Edges
	// older than this no longer count towards the RPM estimate.
	DefaultMaxStampAge = 6000

	DefaultSensorChip = "gpiochip0"
	DefaultStatusFile = "/tmp/rpm/speed"
)

// MonitorConfig is the whole runtime configuration of the monitor: the
// sensor line, the three shift register lines, the estimator cutoff and
// the optional alarm/status extras.
type MonitorConfig struct {
	// Hall sensor input.
	SensorChip string
	SensorPin  int

	// Shift register outputs.
	PinDriver string
	ClockPin  int
	LatchPin  int
	DataPin   int

	// Estimator tunable.
	MaxStampAgeMs uint32

	// AlarmMinRPM below which the low speed alarm fires; 0 disables.
	AlarmMinRPM int

	// StatusFile is where the current RPM is periodically written;
	// empty disables.
	StatusFile string

	Valid        bool
	firstInvalid bool
}

// Default returns a config for the common wiring: sensor on gpiochip0,
// registers bit-banged through the memory-mapped gpio driver.
func Default() MonitorConfig {
	return MonitorConfig{
		SensorChip:    DefaultSensorChip,
		SensorPin:     2,
		PinDriver:     PinDriverPeriph,
		ClockPin:      11,
		LatchPin:      8,
		DataPin:       10,
		MaxStampAgeMs: DefaultMaxStampAge,
		StatusFile:    DefaultStatusFile,
	}
}

// Parse fills in defaults and validates. Invalid configs are logged
// once, not every time they are re-checked.
func (my *MonitorConfig) Parse() {
	if my.SensorChip == "" {
		my.SensorChip = DefaultSensorChip
	}
	if my.PinDriver == "" {
		my.PinDriver = PinDriverPeriph
	}
	if my.MaxStampAgeMs == 0 {
		my.MaxStampAgeMs = DefaultMaxStampAge
	}

	my.Valid = true
	if my.PinDriver != PinDriverPeriph && my.PinDriver != PinDriverSysfs {
		my.Valid = false
	}
	if my.SensorPin < 0 || my.ClockPin < 0 || my.LatchPin < 0 || my.DataPin < 0 {
		my.Valid = false
	}
	if my.ClockPin == my.LatchPin || my.ClockPin == my.DataPin || my.LatchPin == my.DataPin {
		my.Valid = false
	}

	if !my.Valid && !my.firstInvalid {
		my.firstInvalid = true
		log.Infof("Monitor config is not valid: driver %q sensor %d clk %d latch %d data %d",
			my.PinDriver, my.SensorPin, my.ClockPin, my.LatchPin, my.DataPin)
	} else if my.Valid {
		my.firstInvalid = false
	}
}

func (my *MonitorConfig) Equal(cfg *MonitorConfig) bool {
	if my.SensorChip != cfg.SensorChip || my.SensorPin != cfg.SensorPin {
		return false
	}
	if my.PinDriver != cfg.PinDriver {
		return false
	}
	if my.ClockPin != cfg.ClockPin || my.LatchPin != cfg.LatchPin || my.DataPin != cfg.DataPin {
		return false
	}
	if my.MaxStampAgeMs != cfg.MaxStampAgeMs {
		return false
	}
	return true
}
