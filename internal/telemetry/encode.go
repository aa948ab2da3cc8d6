// internal/telemetry/encode.go
package telemetry

import "math"

// Encode converts a Snapshot into a full telemetry register block.
// Layout is protocol-locked. No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotStateCode] = uint16(s.State)
	regs[SlotFaultCode] = uint16(s.Fault)
	regs[SlotPositionMilli] = clampU16(math.Round(s.Position * 1000))
	regs[SlotVelocityMilli] = clampU16(math.Round(s.Velocity*1000) + VelocityOffset)
	regs[SlotLoadKg] = clampU16(math.Round(s.In.LoadKg))
	regs[SlotFlags] = flags(s)

	return regs
}

func flags(s Snapshot) uint16 {
	var f uint16
	if s.Out.MotorEnable {
		f |= FlagMotorEnable
	}
	if s.Out.BrakeEngaged {
		f |= FlagBrakeEngaged
	}
	if s.Out.FaultLamp {
		f |= FlagFaultLamp
	}
	if s.In.TopLimit {
		f |= FlagTopLimit
	}
	if s.In.BottomLimit {
		f |= FlagBottomLimit
	}
	return f
}

func clampU16(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}
