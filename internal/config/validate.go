// internal/config/validate.go
package config

import (
	"fmt"

	"liftcontrol/internal/telemetry"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration. Zero means "use the default";
// Normalize fills defaults in afterwards.
func Validate(cfg *Config) error {
	c := cfg.Lift.Controller

	if c.MaxLoadKg < 0 {
		return fmt.Errorf("controller: max_load_kg must not be negative, got %v", c.MaxLoadKg)
	}
	if c.LiftSpeed < 0 {
		return fmt.Errorf("controller: lift_speed must not be negative, got %v", c.LiftSpeed)
	}
	if c.LowerSpeed < 0 {
		return fmt.Errorf("controller: lower_speed must not be negative, got %v", c.LowerSpeed)
	}
	if c.StationaryEps < 0 {
		return fmt.Errorf("controller: stationary_eps must not be negative, got %v", c.StationaryEps)
	}

	if cfg.Lift.Plant.Acceleration < 0 {
		return fmt.Errorf("plant: acceleration must not be negative, got %v", cfg.Lift.Plant.Acceleration)
	}

	if cfg.Lift.Scan.IntervalMs < 0 {
		return fmt.Errorf("scan: interval_ms must not be negative, got %d", cfg.Lift.Scan.IntervalMs)
	}
	if cfg.Lift.Scan.StatusEveryN < 0 {
		return fmt.Errorf("scan: status_every_n must not be negative, got %d", cfg.Lift.Scan.StatusEveryN)
	}

	// ------------------------------------------------------------
	// REMOTE IO GEOMETRY (OPT-IN)
	// ------------------------------------------------------------

	r := cfg.Lift.RemoteIO
	if r.Enabled {
		if r.Endpoint == "" {
			return fmt.Errorf("remote_io: enabled but endpoint is empty")
		}
		if r.TimeoutMs < 0 {
			return fmt.Errorf("remote_io: timeout_ms must not be negative, got %d", r.TimeoutMs)
		}

		// The telemetry block and the load register live in different
		// tables, but the block itself must fit the address space.
		if int(r.StatusAddress)+telemetry.SlotsPerBlock-1 > 0xFFFF {
			return fmt.Errorf("remote_io: status_address %d leaves no room for a %d-register block",
				r.StatusAddress, telemetry.SlotsPerBlock)
		}
		if int(r.InputAddress)+4 > 0xFFFF {
			return fmt.Errorf("remote_io: input_address %d leaves no room for 5 discrete inputs", r.InputAddress)
		}
		if int(r.CoilAddress)+2 > 0xFFFF {
			return fmt.Errorf("remote_io: coil_address %d leaves no room for 3 coils", r.CoilAddress)
		}
	}

	return nil
}
