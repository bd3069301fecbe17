//go:build tinygo

// Package mmio provides the 32-bit register primitive used by the
// peripheral drivers in this module. On hardware builds R32 is the
// TinyGo volatile register type, so every access compiles to a single
// ordered load or store of the memory-mapped word.
package mmio

import "runtime/volatile"

// R32 is a 32-bit memory-mapped hardware register.
type R32 = volatile.Register32
