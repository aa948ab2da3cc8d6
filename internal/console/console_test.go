// internal/console/console_test.go
package console

import (
	"strings"
	"testing"

	"liftcontrol/internal/control"
	"liftcontrol/internal/telemetry"
)

func runLines(t *testing.T, lines ...string) *Console {
	t.Helper()
	c := New(strings.NewReader(strings.Join(lines, "\n")), &strings.Builder{})
	done := false
	c.Run(func() { done = true })
	if !done {
		t.Fatalf("Run returned without calling quit")
	}
	return c
}

func TestRun_DirectionCommandsAreExclusive(t *testing.T) {
	c := runLines(t, "u", "d")

	cmd, _ := c.Read()
	if cmd.Up || !cmd.Down || cmd.Hold {
		t.Fatalf("commands=%+v, want down only", cmd)
	}
}

func TestRun_StopClearsDirectionCommands(t *testing.T) {
	c := runLines(t, "u", "s")

	cmd, _ := c.Read()
	if cmd.Up || cmd.Down || cmd.Hold {
		t.Fatalf("commands=%+v, want all clear", cmd)
	}
}

func TestRun_EStopToggles(t *testing.T) {
	c := runLines(t, "e")
	cmd, _ := c.Read()
	if !cmd.EmergencyStop {
		t.Fatalf("estop not set after one toggle")
	}

	c = runLines(t, "e", "e")
	cmd, _ = c.Read()
	if cmd.EmergencyStop {
		t.Fatalf("estop set after two toggles")
	}
}

func TestRead_ResetIsAOneCyclePulse(t *testing.T) {
	c := runLines(t, "r")

	cmd, _ := c.Read()
	if !cmd.ResetFault {
		t.Fatalf("reset pulse missing on first read")
	}

	cmd, _ = c.Read()
	if cmd.ResetFault {
		t.Fatalf("reset pulse survived a second read")
	}
}

func TestRun_SetLoad(t *testing.T) {
	c := runLines(t, "l 900")

	cmd, _ := c.Read()
	if cmd.LoadKg != 900 {
		t.Fatalf("load=%v, want 900", cmd.LoadKg)
	}
}

func TestRun_BadLoadRejected(t *testing.T) {
	out := &strings.Builder{}
	c := New(strings.NewReader("l 900\nl abc\n"), out)
	c.Run(func() {})

	cmd, _ := c.Read()
	if cmd.LoadKg != 900 {
		t.Fatalf("load=%v, want previous value 900 kept", cmd.LoadKg)
	}
	if !strings.Contains(out.String(), "Bad load value.") {
		t.Fatalf("no rejection message printed")
	}
}

func TestRun_QuitStopsReading(t *testing.T) {
	c := New(strings.NewReader("q\nu\n"), &strings.Builder{})
	c.Run(func() {})

	cmd, _ := c.Read()
	if cmd.Up {
		t.Fatalf("command after quit was applied")
	}
}

func TestPrinter_EveryNth(t *testing.T) {
	out := &strings.Builder{}
	p := NewPrinter(out, 10)

	for cycle := uint64(1); cycle <= 21; cycle++ {
		s := telemetry.Snapshot{Cycle: cycle, State: control.Holding}
		if err := p.Publish(s); err != nil {
			t.Fatalf("Publish err=%v", err)
		}
	}

	lines := strings.Count(out.String(), "\n")
	if lines != 3 { // cycles 1, 11, 21
		t.Fatalf("printed %d lines, want 3", lines)
	}
}

func TestPrinter_Format(t *testing.T) {
	out := &strings.Builder{}
	p := NewPrinter(out, 1)

	s := telemetry.Snapshot{Cycle: 1, State: control.Lifting, Position: 0.5, Velocity: 0.35}
	s.In.LoadKg = 900
	if err := p.Publish(s); err != nil {
		t.Fatalf("Publish err=%v", err)
	}

	got := out.String()
	for _, want := range []string{"pos=0.500", "vel=0.350", "state=Lifting", "fault=None", "load=900"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
