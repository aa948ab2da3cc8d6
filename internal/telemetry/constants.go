// internal/telemetry/constants.go
package telemetry

// Telemetry register block layout.
// These values define the block and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of registers in the telemetry block.
const SlotsPerBlock = 10

// ---- SLOT INDICES ----

// SlotStateCode holds the operating state code.
const SlotStateCode = 0

// SlotFaultCode holds the latched fault code.
const SlotFaultCode = 1

// SlotPositionMilli holds position in milli-units of travel (0..1000).
const SlotPositionMilli = 2

// SlotVelocityMilli holds velocity in milli-units/s, offset by
// VelocityOffset so downward motion stays representable in a uint16.
const SlotVelocityMilli = 3

// SlotLoadKg holds the reported load in whole kilograms.
const SlotLoadKg = 4

// SlotFlags holds the output/limit flag bits.
const SlotFlags = 5

// ---- RESERVED RANGE ----

// Slots 6-9 are reserved for future use.
const SlotReservedStart = 6
const SlotReservedEnd = 9

// ---- ENCODING ----

// VelocityOffset is added to the signed milli-velocity before encoding.
const VelocityOffset = 30000

// ---- FLAG BITS ----

const (
	FlagMotorEnable  uint16 = 1 << 0
	FlagBrakeEngaged uint16 = 1 << 1
	FlagFaultLamp    uint16 = 1 << 2
	FlagTopLimit     uint16 = 1 << 3
	FlagBottomLimit  uint16 = 1 << 4
)
