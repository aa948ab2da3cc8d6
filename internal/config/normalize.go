// internal/config/normalize.go
package config

// Reference tunables. A zero in the file means "use the default".
const (
	DefaultMaxLoadKg     = 1200.0
	DefaultLiftSpeed     = 0.35
	DefaultLowerSpeed    = 0.30
	DefaultStationaryEps = 0.01
	DefaultAcceleration  = 3.0
	DefaultIntervalMs    = 20
	DefaultStatusEveryN  = 10
	DefaultTimeoutMs     = 2000
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.Lift.Controller
	if c.MaxLoadKg == 0 {
		c.MaxLoadKg = DefaultMaxLoadKg
	}
	if c.LiftSpeed == 0 {
		c.LiftSpeed = DefaultLiftSpeed
	}
	if c.LowerSpeed == 0 {
		c.LowerSpeed = DefaultLowerSpeed
	}
	if c.StationaryEps == 0 {
		c.StationaryEps = DefaultStationaryEps
	}

	if cfg.Lift.Plant.Acceleration == 0 {
		cfg.Lift.Plant.Acceleration = DefaultAcceleration
	}

	s := &cfg.Lift.Scan
	if s.IntervalMs == 0 {
		s.IntervalMs = DefaultIntervalMs
	}
	if s.StatusEveryN == 0 {
		s.StatusEveryN = DefaultStatusEveryN
	}

	r := &cfg.Lift.RemoteIO
	if r.Enabled && r.TimeoutMs == 0 {
		r.TimeoutMs = DefaultTimeoutMs
	}
}
