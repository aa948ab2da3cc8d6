// internal/scan/loop.go
package scan

import (
	"errors"
	"time"

	"liftcontrol/internal/control"
	"liftcontrol/internal/plant"
	"liftcontrol/internal/telemetry"
)

// Positions at which the simulated limit switches trip. The switches
// sit just inside the hard stops so the controller sees them before
// the plant clamps.
const (
	topLimitAt    = 0.9999
	bottomLimitAt = 0.0001
)

// Config is the minimal runtime config the loop needs.
type Config struct {
	Interval time.Duration
}

// Loop is the fixed-tick scan driver. Each cycle it reads commands,
// derives the limit switches from plant position, runs the controller,
// gates the target velocity on the brake, and steps the plant. The
// ordering is the contract: the controller always sees this cycle's
// limits, and the plant never steps before the controller has run.
type Loop struct {
	cfg    Config
	ctrl   *control.Controller
	plant  *plant.Model
	source Source

	// Last good commands, reused when the source fails mid-run.
	last  Commands
	cycle uint64
}

// New creates a loop with immutable config.
func New(cfg Config, ctrl *control.Controller, p *plant.Model, source Source) (*Loop, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("scan: interval must be > 0")
	}
	if ctrl == nil {
		return nil, errors.New("scan: controller required")
	}
	if p == nil {
		return nil, errors.New("scan: plant required")
	}
	if source == nil {
		return nil, errors.New("scan: command source required")
	}
	return &Loop{cfg: cfg, ctrl: ctrl, plant: p, source: source}, nil
}

// CycleOnce performs exactly one scan cycle and returns its snapshot.
// A source failure does not abort the cycle: the loop runs on the last
// good commands with any reset pulse dropped, and reports the error on
// the snapshot.
func (l *Loop) CycleOnce() telemetry.Snapshot {
	cmd, err := l.source.Read()
	if err != nil {
		cmd = l.last
		cmd.ResetFault = false
	} else {
		l.last = cmd
		// A reset is a pulse, not a level. Never replay it.
		l.last.ResetFault = false
	}

	in := control.Inputs{
		CommandUp:     cmd.Up,
		CommandDown:   cmd.Down,
		CommandHold:   cmd.Hold,
		EmergencyStop: cmd.EmergencyStop,
		ResetFault:    cmd.ResetFault,
		TopLimit:      l.plant.Position() >= topLimitAt,
		BottomLimit:   l.plant.Position() <= bottomLimitAt,
		LoadKg:        cmd.LoadKg,
	}

	out := l.ctrl.Update(in, l.plant)

	// An engaged brake overrides whatever velocity was commanded.
	if out.BrakeEngaged {
		l.plant.SetTarget(0)
	}
	l.plant.Step(l.cfg.Interval.Seconds())

	l.cycle++
	return telemetry.Snapshot{
		Cycle:    l.cycle,
		In:       in,
		Out:      out,
		State:    l.ctrl.State(),
		Fault:    l.ctrl.Fault(),
		Position: l.plant.Position(),
		Velocity: l.plant.Velocity(),
		Target:   l.plant.Target(),
		Err:      err,
	}
}
