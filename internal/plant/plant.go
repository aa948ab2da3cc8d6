// internal/plant/plant.go
package plant

// Model is a bounded-inertia model of the lift mechanism.
// Position is normalized travel: 0 = bottom stop, 1 = top stop.
// Velocity chases the commanded target but its rate of change is
// limited by a fixed acceleration, so a commanded step in target
// velocity ramps instead of jumping.
type Model struct {
	accel float64 // units/s^2; max |dv| per second

	position float64
	velocity float64 // units/s
	target   float64 // commanded velocity, written by the controller
}

// New creates a model at rest at the bottom stop.
func New(accel float64) *Model {
	return &Model{accel: accel}
}

// SetTarget sets the commanded velocity. The controller expresses intent
// here; Step decides how fast the mechanism can actually follow it.
func (m *Model) SetTarget(v float64) {
	m.target = v
}

func (m *Model) Target() float64 {
	return m.target
}

func (m *Model) Position() float64 {
	return m.position
}

func (m *Model) Velocity() float64 {
	return m.velocity
}

// Step advances the model by dt seconds. dt must be > 0; the scan loop
// guarantees a fixed positive timestep.
func (m *Model) Step(dt float64) {
	// Chase the target, bounded by accel.
	dv := m.target - m.velocity
	maxDv := m.accel * dt
	if dv > maxDv {
		dv = maxDv
	}
	if dv < -maxDv {
		dv = -maxDv
	}
	m.velocity += dv

	m.position += m.velocity * dt
	if m.position < 0 {
		m.position = 0
	}
	if m.position > 1 {
		m.position = 1
	}

	// Residual velocity must not keep pushing against a hard stop.
	if m.position <= 0 && m.velocity < 0 {
		m.velocity = 0
	}
	if m.position >= 1 && m.velocity > 0 {
		m.velocity = 0
	}
}
