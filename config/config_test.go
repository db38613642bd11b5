package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	cfg.Parse()
	assert.True(t, cfg.Valid)
}

func TestParseFillsDefaults(t *testing.T) {
	cfg := MonitorConfig{SensorPin: 2, ClockPin: 11, LatchPin: 8, DataPin: 10}
	cfg.Parse()

	assert.Equal(t, DefaultSensorChip, cfg.SensorChip)
	assert.Equal(t, PinDriverPeriph, cfg.PinDriver)
	assert.Equal(t, uint32(DefaultMaxStampAge), cfg.MaxStampAgeMs)
	assert.True(t, cfg.Valid)
}

func TestParseRejectsBadDriver(t *testing.T) {
	cfg := Default()
	cfg.PinDriver = "i2c"
	cfg.Parse()
	assert.False(t, cfg.Valid)
}

func TestParseRejectsSharedPins(t *testing.T) {
	cfg := Default()
	cfg.LatchPin = cfg.ClockPin
	cfg.Parse()
	assert.False(t, cfg.Valid)
}

func TestEqual(t *testing.T) {
	a := Default()
	b := Default()
	assert.True(t, a.Equal(&b))

	b.DataPin = 99
	assert.False(t, a.Equal(&b))
}
