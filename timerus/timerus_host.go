//go:build !tinygo

package timerus

import "time"

// Wait blocks until at least us microseconds have elapsed. The host
// version sleeps instead of spinning on the hardware counter.
func Wait(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// NewTimer returns a Timer over a simulated register block. Host
// builds only; on hardware the single TIMERUS instance is the only
// handle.
func NewTimer() *Timer {
	return &Timer{r: new(registers)}
}
