package tacho

// SensorConfig names the GPIO line the hall sensor is wired to. The
// sensor output is open-collector with a pull-up, so one magnet pass
// shows up as one falling edge.
type SensorConfig struct {
	Chip string // gpio chip device name, e.g. "gpiochip0"
	Pin  int    // line offset on that chip
}
