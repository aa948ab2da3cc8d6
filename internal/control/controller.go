// internal/control/controller.go
package control

import (
	"math"

	"liftcontrol/internal/fault"
	"liftcontrol/internal/plant"
)

// Config holds the controller tunables.
type Config struct {
	MaxLoadKg     float64 // loads above this latch Overload
	LiftSpeed     float64 // units/s, upward target velocity
	LowerSpeed    float64 // units/s, downward target velocity (positive)
	StationaryEps float64 // |velocity| below this counts as stopped
}

// DefaultConfig returns the reference tunables.
func DefaultConfig() Config {
	return Config{
		MaxLoadKg:     1200.0,
		LiftSpeed:     0.35,
		LowerSpeed:    0.30,
		StationaryEps: 0.01,
	}
}

// Controller decides exactly one operating state per scan cycle and
// commands the plant's target velocity. It never writes position or
// velocity: the controller expresses intent, the plant expresses the
// physical response.
type Controller struct {
	cfg    Config
	state  State
	faults fault.Latch

	// Previous limit readings. No logic depends on these; they are
	// kept for inspection only.
	lastTopLimit    bool
	lastBottomLimit bool
}

// New creates a controller in Holding with no fault latched.
func New(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// State returns the state decided by the most recent Update.
func (c *Controller) State() State {
	return c.state
}

// Fault returns the currently latched fault code.
func (c *Controller) Fault() fault.Code {
	return c.faults.Held()
}

// Update runs one scan cycle: latch faults, apply a safety-gated reset,
// decide the state, then write the outputs and the plant's target
// velocity. The four steps run in this fixed order; reordering them
// changes which fault wins and whether a reset is honored.
func (c *Controller) Update(in Inputs, p *plant.Model) Outputs {
	var out Outputs
	out.BrakeEngaged = true

	// ---- 1. Latch faults (priority-based) ----
	if in.EmergencyStop {
		c.faults.Raise(fault.EmergencyStop)
	}
	if in.LoadKg > c.cfg.MaxLoadKg {
		c.faults.Raise(fault.Overload)
	}

	if in.TopLimit && in.BottomLimit {
		// Both switches at once is a sensor inconsistency.
		c.faults.Raise(fault.LimitViolation)
	} else {
		if c.state == Lifting && in.TopLimit {
			c.faults.Raise(fault.LimitViolation)
		}
		if c.state == Lowering && in.BottomLimit {
			c.faults.Raise(fault.LimitViolation)
		}

		// Commanding into an active limit is a violation even if the
		// state decision below would refuse to move that way.
		if in.CommandUp && in.TopLimit {
			c.faults.Raise(fault.LimitViolation)
		}
		if in.CommandDown && in.BottomLimit {
			c.faults.Raise(fault.LimitViolation)
		}
	}

	// ---- 2. Conditional fault clear ----
	// Honored only with the e-stop released and the lift stationary.
	// An unsafe reset pulse is silently ignored, not an error.
	if in.ResetFault && !in.EmergencyStop && math.Abs(p.Velocity()) < c.cfg.StationaryEps {
		c.faults.Clear()
	}

	// ---- 3. State decision ----
	switch {
	case c.faults.HasFault():
		c.state = Faulted
	case in.CommandUp && !in.CommandDown && !in.TopLimit:
		c.state = Lifting
	case in.CommandDown && !in.CommandUp && !in.BottomLimit:
		c.state = Lowering
	default:
		// No command, conflicting commands, explicit hold, or a
		// command blocked by its own limit switch.
		c.state = Holding
	}

	// ---- 4. Outputs + target velocity ----
	switch c.state {
	case Faulted:
		p.SetTarget(0)
		out.FaultLamp = true

	case Holding:
		p.SetTarget(0)

	case Lifting:
		if in.TopLimit {
			p.SetTarget(0)
		} else {
			p.SetTarget(c.cfg.LiftSpeed)
			out.MotorEnable = true
			out.MotorDir = DirUp
			out.BrakeEngaged = false
		}

	case Lowering:
		if in.BottomLimit {
			p.SetTarget(0)
		} else {
			p.SetTarget(-c.cfg.LowerSpeed)
			out.MotorEnable = true
			out.MotorDir = DirDown
			out.BrakeEngaged = false
		}
	}

	c.lastTopLimit = in.TopLimit
	c.lastBottomLimit = in.BottomLimit

	return out
}
