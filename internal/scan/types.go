// internal/scan/types.go
package scan

import "liftcontrol/internal/telemetry"

// Commands is the operator-facing slice of a cycle's input snapshot.
// Limit switches are not here: the loop derives them from plant
// position before every controller scan.
type Commands struct {
	Up   bool
	Down bool
	Hold bool

	EmergencyStop bool
	ResetFault    bool // pulse; the loop consumes it after one cycle

	LoadKg float64
}

// Source supplies the operator command state once per cycle.
type Source interface {
	Read() (Commands, error)
}

// Sink consumes one cycle snapshot. Sink errors never stop the loop;
// the caller logs them and carries on.
type Sink interface {
	Publish(telemetry.Snapshot) error
}
