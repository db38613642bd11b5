package main

import (
	"flag"
	"os"
	"os/signal"

	"github.com/hbilar/arduino-rpm-counter/config"
	"github.com/hbilar/arduino-rpm-counter/log"
	"github.com/hbilar/arduino-rpm-counter/monitor"
	"github.com/hbilar/arduino-rpm-counter/version"
)

func main() {
	cfg := config.Default()

	flag.StringVar(&cfg.SensorChip, "chip", cfg.SensorChip, "gpio chip for the hall sensor")
	flag.IntVar(&cfg.SensorPin, "sensor", cfg.SensorPin, "hall sensor line offset")
	flag.StringVar(&cfg.PinDriver, "pindriver", cfg.PinDriver, "display pin driver: periph or sysfs")
	flag.IntVar(&cfg.ClockPin, "clock", cfg.ClockPin, "shift register clock pin")
	flag.IntVar(&cfg.LatchPin, "latch", cfg.LatchPin, "shift register latch pin")
	flag.IntVar(&cfg.DataPin, "data", cfg.DataPin, "shift register data pin")
	maxAge := flag.Uint("maxage", config.DefaultMaxStampAge, "max edge age in ms")
	flag.IntVar(&cfg.AlarmMinRPM, "alarmrpm", 0, "alarm when speed drops below this RPM (0 = off)")
	flag.StringVar(&cfg.StatusFile, "statusfile", cfg.StatusFile, "file to write current RPM to (empty = off)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg.MaxStampAgeMs = uint32(*maxAge)
	log.SetDebug(*debug)

	log.Infof("=============== rpmcounter %s start ===============", version.Version)

	mon := monitor.New(cfg)
	if err := mon.Init(); err != nil {
		log.Errorf("init failed: %v", err)
		os.Exit(1)
	}

	go mon.Run()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	<-c

	mon.Fini()

	log.Info("=============== rpmcounter stop ===============")
	os.Exit(0)
}
