// internal/remoteio/device.go
package remoteio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"liftcontrol/internal/scan"
	"liftcontrol/internal/telemetry"
)

// Discrete input offsets, relative to Config.InputAddress.
const (
	inputUp    = 0
	inputDown  = 1
	inputHold  = 2
	inputEStop = 3
	inputReset = 4

	inputCount = 5
)

// Coil offsets, relative to Config.CoilAddress.
const (
	coilMotorEnable = 0
	coilBrake       = 1
	coilFaultLamp   = 2

	coilCount = 3
)

// bus is the slice of the Modbus client API the adapter needs.
// Geometry only: raw packed bytes in, raw packed bytes out.
type bus interface {
	ReadDiscreteInputs(address, quantity uint16) ([]byte, error)
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
	WriteMultipleCoils(address, quantity uint16, value []byte) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Config is the transport and register geometry for one remote I/O rack.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration

	InputAddress  uint16 // first of the 5 command discrete inputs
	LoadRegister  uint16 // input register holding load in kg
	CoilAddress   uint16 // first of the 3 actuator coils
	StatusAddress uint16 // first holding register of the telemetry block
}

// Device is a single TCP connection to one remote I/O rack. It is both
// the loop's command source and an output sink, so a mutex serializes
// the two sides.
type Device struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	bus     bus
	cfg     Config

	// Previous reset input level, for rising-edge detection: the rack
	// reports a level, the controller needs a one-cycle pulse.
	lastReset bool
}

// New creates a connected device.
func New(cfg Config) (*Device, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("remoteio: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("remoteio: connect %s: %w", cfg.Endpoint, err)
	}

	return &Device{
		handler: h,
		bus:     modbus.NewClient(h),
		cfg:     cfg,
	}, nil
}

// Close closes the TCP connection.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handler == nil {
		return nil
	}
	return d.handler.Close()
}

// Read implements scan.Source: one discrete-input read for the command
// bits, one input-register read for the load.
func (d *Device) Read() (scan.Commands, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, err := d.bus.ReadDiscreteInputs(d.cfg.InputAddress, inputCount)
	if err != nil {
		return scan.Commands{}, fmt.Errorf("remoteio: read inputs: %w", err)
	}
	bits := unpackBits(raw, inputCount)

	loadRaw, err := d.bus.ReadInputRegisters(d.cfg.LoadRegister, 1)
	if err != nil {
		return scan.Commands{}, fmt.Errorf("remoteio: read load: %w", err)
	}
	if len(loadRaw) < 2 {
		return scan.Commands{}, errors.New("remoteio: short load register payload")
	}

	cmd := scan.Commands{
		Up:            bits[inputUp],
		Down:          bits[inputDown],
		Hold:          bits[inputHold],
		EmergencyStop: bits[inputEStop],
		ResetFault:    bits[inputReset] && !d.lastReset,
		LoadKg:        float64(uint16(loadRaw[0])<<8 | uint16(loadRaw[1])),
	}
	d.lastReset = bits[inputReset]

	return cmd, nil
}

// Publish implements scan.Sink: actuator coils plus the telemetry block.
func (d *Device) Publish(s telemetry.Snapshot) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	coils := make([]bool, coilCount)
	coils[coilMotorEnable] = s.Out.MotorEnable
	coils[coilBrake] = s.Out.BrakeEngaged
	coils[coilFaultLamp] = s.Out.FaultLamp

	if _, err := d.bus.WriteMultipleCoils(d.cfg.CoilAddress, coilCount, packBits(coils)); err != nil {
		return fmt.Errorf("remoteio: write coils: %w", err)
	}

	regs := telemetry.Encode(s)
	if _, err := d.bus.WriteMultipleRegisters(d.cfg.StatusAddress, uint16(len(regs)), packRegisters(regs)); err != nil {
		return fmt.Errorf("remoteio: write telemetry: %w", err)
	}

	return nil
}

// ---- helpers (pure geometry) ----

func unpackBits(data []byte, count int) []bool {
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		byteIdx := i / 8
		bitIdx := i % 8
		if byteIdx >= len(data) {
			out[i] = false
			continue
		}
		out[i] = (data[byteIdx]&(1<<bitIdx) != 0)
	}
	return out
}

func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
