// internal/control/types.go
package control

// Inputs is one scan cycle's operator commands and sensor readings.
// The external driver builds a fresh value every cycle; the controller
// only reads it.
type Inputs struct {
	CommandUp   bool
	CommandDown bool
	CommandHold bool // informational; the state decision treats it as no command

	EmergencyStop bool
	ResetFault    bool // pulse: true for exactly one cycle per operator reset

	TopLimit    bool
	BottomLimit bool

	LoadKg float64
}

// Direction is the commanded motor rotation.
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirNone:
		return "None"
	}
	return "Unknown"
}

// Outputs is the actuator command produced exactly once per cycle.
type Outputs struct {
	MotorEnable  bool
	MotorDir     Direction
	BrakeEngaged bool // true = brake on
	FaultLamp    bool
}

// State is the controller's operating state. It is recomputed every
// cycle from the inputs and the fault latch; only the latch and the
// plant carry state between cycles.
type State int

const (
	Holding State = iota
	Lifting
	Lowering
	Faulted
)

func (s State) String() string {
	switch s {
	case Holding:
		return "Holding"
	case Lifting:
		return "Lifting"
	case Lowering:
		return "Lowering"
	case Faulted:
		return "Faulted"
	}
	return "Unknown"
}
