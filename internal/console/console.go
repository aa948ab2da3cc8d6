// internal/console/console.go
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"liftcontrol/internal/scan"
)

// Console is the interactive command source. A reader goroutine parses
// operator lines and updates the command state; the scan loop reads it
// once per cycle. Commands are levels except the fault reset, which is
// armed by 'r' and consumed by exactly one Read.
type Console struct {
	in  io.Reader
	out io.Writer

	mu  sync.Mutex
	cmd scan.Commands
}

// New creates a console reading operator lines from in and writing
// prompts and messages to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Read implements scan.Source.
func (c *Console) Read() (scan.Commands, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cmd := c.cmd
	c.cmd.ResetFault = false // pulse consumed
	return cmd, nil
}

// Run reads operator lines until EOF or a quit command, then calls
// quit. It blocks; run it on its own goroutine.
func (c *Console) Run(quit func()) {
	c.PrintHelp()

	sc := bufio.NewScanner(c.in)
	for sc.Scan() {
		if c.handleLine(strings.TrimSpace(sc.Text())) {
			quit()
			return
		}
	}
	quit()
}

// handleLine applies one operator line. Returns true on quit.
func (c *Console) handleLine(line string) bool {
	if line == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch line {
	case "q":
		return true
	case "u":
		c.cmd.Up, c.cmd.Down, c.cmd.Hold = true, false, false
	case "d":
		c.cmd.Up, c.cmd.Down, c.cmd.Hold = false, true, false
	case "h":
		c.cmd.Up, c.cmd.Down, c.cmd.Hold = false, false, true
	case "s":
		c.cmd.Up, c.cmd.Down, c.cmd.Hold = false, false, false
	case "e":
		c.cmd.EmergencyStop = !c.cmd.EmergencyStop
	case "r":
		c.cmd.ResetFault = true
	case "help":
		c.printHelpLocked()
	default:
		if strings.HasPrefix(line, "l") {
			kg, err := strconv.ParseFloat(strings.TrimSpace(line[1:]), 64)
			if err != nil || kg < 0 {
				fmt.Fprintln(c.out, "Bad load value.")
				return false
			}
			c.cmd.LoadKg = kg
			return false
		}
		fmt.Fprintln(c.out, "Unknown command. Type 'help'.")
	}
	return false
}

// PrintHelp writes the command summary.
func (c *Console) PrintHelp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printHelpLocked()
}

func (c *Console) printHelpLocked() {
	fmt.Fprint(c.out,
		"Commands:\n"+
			"  u  = command up\n"+
			"  d  = command down\n"+
			"  h  = hold\n"+
			"  s  = stop commands (clear u/d/h)\n"+
			"  e  = toggle emergency stop\n"+
			"  r  = reset fault (only if stopped + estop released)\n"+
			"  l <kg> = set load kg (e.g. l 900)\n"+
			"  q  = quit\n")
}
