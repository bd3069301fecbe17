//go:build tinygo

package timerus

import "unsafe"

// Base address of the timer block; the Fixed Time Base registers start
// at offset 0x10.
const timerBase uintptr = 0x6000_5000

// TIMERUS is the Fixed Time Base register block. There is exactly one
// instance on the chip.
var TIMERUS = &Timer{
	r: (*registers)(unsafe.Pointer(timerBase + 0x10)),
}

// Wait blocks until at least us microseconds have elapsed on the
// free-running counter. The counter may wrap; the subtraction is
// wrap-safe.
func Wait(us uint32) {
	start := TIMERUS.Counter()
	for TIMERUS.Counter()-start <= us {
	}
}
