// Package timerus models the Tegra X1 Fixed Time Base registers.
//
// The USEC_CFG/CNTR_1US registers provide a fixed time base in
// microseconds to be used by the rest of the system regardless of the
// clk_m frequency (12 MHz or 38.4 MHz). See "8.8 Fixed Time Base
// Registers" in the Tegra X1 Technical Reference Manual.
//
// The package describes the layout and exposes field accessors; the
// only logic on top of it is Wait, the blocking microsecond delay
// consumed by the peripheral drivers.
package timerus

import "github.com/roblabla/libtegra/mmio"

// Fixed Time Base register block.
type registers struct {
	CNTR_1US    mmio.R32     // 0x00
	USEC_CFG    mmio.R32     // 0x04
	_           [13]mmio.R32 // 0x08 .. 0x38
	CNTR_FREEZE mmio.R32     // 0x3C
}

// USEC_CFG bit assignments. Dividend and divisor are n+1 encoded.
const (
	usecDividendPos = 8
	usecDividendMsk = 0xFF
	usecDivisorPos  = 0
	usecDivisorMsk  = 0xFF
)

// Divider presets for the two supported clk_m frequencies.
const (
	Clk12MHzDividend uint8 = 0x00
	Clk12MHzDivisor  uint8 = 0x0B

	Clk384MHzDividend uint8 = 0x04
	Clk384MHzDivisor  uint8 = 0xBF
)

// Core identifies one of the cores whose debug state can freeze the
// timers. The value is the bit position in CNTR_FREEZE.
type Core uint8

const (
	CPU0 Core = iota
	CPU1
	CPU2
	CPU3
	// COP is the companion processor (BPMP).
	COP
)

const badCore = "timerus: invalid core"

// Timer gives access to the Fixed Time Base register block.
type Timer struct {
	r *registers
}

// Counter returns the elapsed time in microseconds.
func (t *Timer) Counter() uint32 {
	return t.r.CNTR_1US.Get()
}

// ConfigureClock programs the microsecond divider for the reference
// clock feeding the counter. Use the ClkXxx presets for the two
// supported clk_m frequencies.
func (t *Timer) ConfigureClock(dividend, divisor uint8) {
	t.r.USEC_CFG.Set(uint32(dividend)<<usecDividendPos | uint32(divisor)<<usecDivisorPos)
}

// Dividend returns the configured microsecond dividend.
func (t *Timer) Dividend() uint8 {
	return uint8(t.r.USEC_CFG.Get() >> usecDividendPos & usecDividendMsk)
}

// Divisor returns the configured microsecond divisor.
func (t *Timer) Divisor() uint8 {
	return uint8(t.r.USEC_CFG.Get() >> usecDivisorPos & usecDivisorMsk)
}

// SetDebugFreeze controls whether the timers freeze while the given
// core is in debug state.
func (t *Timer) SetDebugFreeze(core Core, freeze bool) {
	if core > COP {
		panic(badCore)
	}
	if freeze {
		t.r.CNTR_FREEZE.SetBits(1 << core)
	} else {
		t.r.CNTR_FREEZE.ClearBits(1 << core)
	}
}

// DebugFreeze reports whether the timers freeze while the given core
// is in debug state.
func (t *Timer) DebugFreeze(core Core) bool {
	if core > COP {
		panic(badCore)
	}
	return t.r.CNTR_FREEZE.HasBits(1 << core)
}
