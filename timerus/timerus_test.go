//go:build !tinygo

package timerus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigureClock(t *testing.T) {
	tm := NewTimer()

	tm.ConfigureClock(Clk12MHzDividend, Clk12MHzDivisor)
	require.Equal(t, uint32(0x0000_000B), tm.r.USEC_CFG.Get())
	require.Equal(t, Clk12MHzDividend, tm.Dividend())
	require.Equal(t, Clk12MHzDivisor, tm.Divisor())

	tm.ConfigureClock(Clk384MHzDividend, Clk384MHzDivisor)
	require.Equal(t, uint32(0x0000_04BF), tm.r.USEC_CFG.Get())
	require.Equal(t, Clk384MHzDividend, tm.Dividend())
	require.Equal(t, Clk384MHzDivisor, tm.Divisor())
}

func TestCounter(t *testing.T) {
	tm := NewTimer()

	tm.r.CNTR_1US.Set(0x1234_5678)
	require.Equal(t, uint32(0x1234_5678), tm.Counter())
}

func TestDebugFreeze(t *testing.T) {
	tm := NewTimer()

	cores := []Core{CPU0, CPU1, CPU2, CPU3, COP}
	for _, core := range cores {
		require.False(t, tm.DebugFreeze(core))
	}

	tm.SetDebugFreeze(CPU2, true)
	tm.SetDebugFreeze(COP, true)
	require.Equal(t, uint32(0b1_0100), tm.r.CNTR_FREEZE.Get())
	require.True(t, tm.DebugFreeze(CPU2))
	require.True(t, tm.DebugFreeze(COP))
	require.False(t, tm.DebugFreeze(CPU0))

	tm.SetDebugFreeze(CPU2, false)
	require.Equal(t, uint32(0b1_0000), tm.r.CNTR_FREEZE.Get())
	require.False(t, tm.DebugFreeze(CPU2))
}

func TestDebugFreezeBadCore(t *testing.T) {
	tm := NewTimer()

	require.PanicsWithValue(t, badCore, func() {
		tm.SetDebugFreeze(COP+1, true)
	})
	require.PanicsWithValue(t, badCore, func() {
		tm.DebugFreeze(COP + 1)
	})
}
