//go:build tinygo

package spi

import "unsafe"

// Controller base addresses.
const (
	spi1Base uintptr = 0x7000_D400
	spi2Base uintptr = 0x7000_D600
	spi3Base uintptr = 0x7000_D800
	spi4Base uintptr = 0x7000_DA00
)

// SPI controller handles. These are the only valid Spi instances;
// each is permanently bound to one of the four physical register
// blocks.
var (
	SPI1 = &Spi{r: (*registers)(unsafe.Pointer(spi1Base))}
	SPI2 = &Spi{r: (*registers)(unsafe.Pointer(spi2Base))}
	SPI3 = &Spi{r: (*registers)(unsafe.Pointer(spi3Base))}
	SPI4 = &Spi{r: (*registers)(unsafe.Pointer(spi4Base))}
)
