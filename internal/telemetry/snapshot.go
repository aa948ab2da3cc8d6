// internal/telemetry/snapshot.go
package telemetry

import (
	"liftcontrol/internal/control"
	"liftcontrol/internal/fault"
)

// Snapshot is everything one scan cycle produced. The loop emits one
// per cycle; sinks (console printer, remote I/O writer, trace recorder)
// consume it and must not mutate it.
type Snapshot struct {
	Cycle uint64

	In  control.Inputs
	Out control.Outputs

	State control.State
	Fault fault.Code

	Position float64
	Velocity float64
	Target   float64

	// Err is non-nil when the cycle ran on stale commands because the
	// input source failed. The cycle itself still completed.
	Err error
}
