// internal/fault/latch.go
package fault

// Code identifies a fault condition. The numeric value doubles as the
// severity ranking: a higher code always outranks a lower one.
type Code int

const (
	None           Code = 0
	LimitViolation Code = 10
	Overload       Code = 20
	EmergencyStop  Code = 30
)

func (c Code) String() string {
	switch c {
	case None:
		return "None"
	case LimitViolation:
		return "LimitViolation"
	case Overload:
		return "Overload"
	case EmergencyStop:
		return "EmergencyStop"
	}
	return "Unknown"
}

// Priority ranks a code for latching. Higher value = higher severity.
func Priority(c Code) int {
	return int(c)
}

// Latch holds the highest-severity fault seen since the last clear.
// Pure state, no side effects beyond the held value.
type Latch struct {
	held Code
}

// Raise upgrades the held fault to c only if c outranks it.
// Equal or lower severity is a no-op: a latched fault never degrades
// without an explicit Clear.
func (l *Latch) Raise(c Code) {
	if Priority(c) > Priority(l.held) {
		l.held = c
	}
}

// Clear unconditionally drops the held fault. Safety gating (e-stop
// released, mechanism stationary) is the caller's responsibility.
func (l *Latch) Clear() {
	l.held = None
}

// HasFault reports whether any fault is latched.
func (l *Latch) HasFault() bool {
	return l.held != None
}

// Held returns the currently latched code.
func (l *Latch) Held() Code {
	return l.held
}
