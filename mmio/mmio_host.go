//go:build !tinygo

// Package mmio provides the 32-bit register primitive used by the
// peripheral drivers in this module. This host version backs each
// register with plain memory so the drivers can run against a
// simulated peripheral in unit tests.
package mmio

import "sync/atomic"

// R32 models a 32-bit memory-mapped hardware register. The method set
// mirrors runtime/volatile.Register32, which R32 aliases on hardware
// builds. Accesses go through sync/atomic so a simulated peripheral
// may observe them from another goroutine.
type R32 struct {
	v       uint32
	onLoad  func(stored uint32) uint32
	onStore func(old, new uint32) uint32
}

// Hook installs simulation callbacks on the register.
//
// onLoad receives the stored word and returns the value the load
// observes; it models read side effects such as a FIFO pop. onStore
// receives the previous and the written word and returns the value
// that lands in the register; it models write side effects such as
// self-clearing trigger bits. Either may be nil.
func (r *R32) Hook(onLoad func(stored uint32) uint32, onStore func(old, new uint32) uint32) {
	r.onLoad = onLoad
	r.onStore = onStore
}

// Get returns the register value.
func (r *R32) Get() uint32 {
	v := atomic.LoadUint32(&r.v)
	if r.onLoad != nil {
		v = r.onLoad(v)
	}
	return v
}

// Set writes v to the register.
func (r *R32) Set(v uint32) {
	if r.onStore != nil {
		v = r.onStore(atomic.LoadUint32(&r.v), v)
	}
	atomic.StoreUint32(&r.v, v)
}

// SetBits reads the register and sets the bits in mask.
func (r *R32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits reads the register and clears the bits in mask.
func (r *R32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// HasBits reports whether any of the bits in mask are set.
func (r *R32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}

// ReplaceBits sets the given bitfield, defined by mask shifted left by
// pos, to value.
func (r *R32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
