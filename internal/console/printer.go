// internal/console/printer.go
package console

import (
	"fmt"
	"io"

	"liftcontrol/internal/telemetry"
)

// Printer writes a status line for every Nth cycle. At the reference
// 50 Hz scan rate, every=10 prints at 5 Hz.
type Printer struct {
	out   io.Writer
	every uint64
}

// NewPrinter creates a printer. every < 1 is treated as 1.
func NewPrinter(out io.Writer, every int) *Printer {
	if every < 1 {
		every = 1
	}
	return &Printer{out: out, every: uint64(every)}
}

// Publish implements scan.Sink.
func (p *Printer) Publish(s telemetry.Snapshot) error {
	if (s.Cycle-1)%p.every != 0 {
		return nil
	}

	_, err := fmt.Fprintf(p.out,
		"pos=%.3f vel=%.3f state=%s fault=%s top=%t bot=%t load=%.0f estop=%t\n",
		s.Position,
		s.Velocity,
		s.State,
		s.Fault,
		s.In.TopLimit,
		s.In.BottomLimit,
		s.In.LoadKg,
		s.In.EmergencyStop,
	)
	return err
}
