package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hbilar/arduino-rpm-counter/config"
	"github.com/hbilar/arduino-rpm-counter/display"
	"github.com/hbilar/arduino-rpm-counter/log"
	"github.com/hbilar/arduino-rpm-counter/tacho"
	"github.com/hbilar/arduino-rpm-counter/util"
)

const (
	ALARM_POLL_INTERVAL_SEC  = 5
	STATUS_WRITE_INTERVAL_MS = 500
)

// Monitor wires the sensor, the estimator and the display together and
// runs the main loop. The loop never sleeps: every pass recomputes the
// RPM and lights exactly one display digit, which keeps the multiplexed
// display flicker-free without any scheduling beyond the loop itself.
type Monitor struct {
	cfg config.MonitorConfig

	ring   *tacho.TimestampRing
	est    *tacho.Estimator
	seq    *display.Sequencer
	sensor *tacho.Sensor
	drv    display.Driver

	// lastRpm is the most recent estimate, published for the alarm
	// and status goroutines which run off the hot path.
	lastRpm atomic.Int32

	alarmOn   bool
	pollCount uint
	bExit     bool
}

func New(cfg config.MonitorConfig) *Monitor {
	return &Monitor{cfg: cfg}
}

// Init claims the hardware: shift register pins first, then the sensor
// line with its edge handler. On any failure everything claimed so far
// is released.
func (my *Monitor) Init() error {
	my.cfg.Parse()
	if !my.cfg.Valid {
		return fmt.Errorf("monitor: invalid config")
	}

	var err error
	switch my.cfg.PinDriver {
	case config.PinDriverSysfs:
		my.drv, err = display.NewSysfsDriver(my.cfg.ClockPin, my.cfg.LatchPin, my.cfg.DataPin)
	default:
		my.drv, err = display.NewGpioDriver(my.cfg.ClockPin, my.cfg.LatchPin, my.cfg.DataPin)
	}
	if err != nil {
		return err
	}
	my.seq = display.NewSequencer(my.drv)

	my.ring = &tacho.TimestampRing{}
	my.est = tacho.NewEstimator(my.ring)
	my.est.MaxStampAge = my.cfg.MaxStampAgeMs

	my.sensor = tacho.NewSensor(tacho.SensorConfig{
		Chip: my.cfg.SensorChip,
		Pin:  my.cfg.SensorPin,
	}, my.ring)
	if err := my.sensor.Start(); err != nil {
		_ = my.drv.Close()
		return err
	}

	if my.cfg.AlarmMinRPM > 0 {
		my.startAlarmMon()
	}
	if my.cfg.StatusFile != "" {
		my.startStatusWriter()
	}

	log.Infof("Monitor up: sensor %s pin %d, %s pins clk %d latch %d data %d",
		my.cfg.SensorChip, my.cfg.SensorPin, my.cfg.PinDriver,
		my.cfg.ClockPin, my.cfg.LatchPin, my.cfg.DataPin)
	return nil
}

// Run is the busy loop: estimate, re-render on change, tick one digit.
// It only returns after Fini is called.
func (my *Monitor) Run() {
	for !my.bExit {
		now := tacho.Timestamp(util.Millis())
		rpm := my.est.Compute(now)

		if my.seq.SetValue(rpm) {
			log.Infof("rpm: %d", rpm)
			my.lastRpm.Store(int32(rpm))
		}

		if err := my.seq.Tick(); err != nil {
			log.Errorf("display strobe: %v", err)
		}
	}
}

func (my *Monitor) Fini() {
	my.bExit = true
	if my.sensor != nil {
		_ = my.sensor.Close()
	}
	if my.drv != nil {
		_ = my.drv.Close()
	}
	log.Infof("Monitor down after %s", util.UptimeInString())
}

// startAlarmMon watches for the shaft running below the configured
// minimum. Alerts only on the transition, not every poll.
func (my *Monitor) startAlarmMon() {
	go func() {
		for !my.bExit {
			time.Sleep(ALARM_POLL_INTERVAL_SEC * time.Second)
			my.pollCount++

			rpm := int(my.lastRpm.Load())
			if rpm < my.cfg.AlarmMinRPM {
				if !my.alarmOn {
					log.Errorf("ALARM: speed %d RPM is below threshold %d RPM poll %d",
						rpm, my.cfg.AlarmMinRPM, my.pollCount)
				}
				my.alarmOn = true
			} else {
				if my.alarmOn {
					log.Infof("Speed %d RPM is back above threshold %d poll %d",
						rpm, my.cfg.AlarmMinRPM, my.pollCount)
				}
				my.alarmOn = false
			}
		}
	}()
}

// startStatusWriter periodically drops the current RPM into a small
// file so other tools can read it without talking to us.
func (my *Monitor) startStatusWriter() {
	dir := filepath.Dir(my.cfg.StatusFile)
	_ = os.MkdirAll(dir, 0755)

	go func() {
		for !my.bExit {
			time.Sleep(STATUS_WRITE_INTERVAL_MS * time.Millisecond)
			out := []byte(strconv.Itoa(int(my.lastRpm.Load())) + "\n")
			_ = os.WriteFile(my.cfg.StatusFile, out, 0644)
		}
	}()
}
