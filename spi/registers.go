package spi

import "github.com/roblabla/libtegra/mmio"

// Register block of one SPI controller. The layout is a hardware
// contract; offsets follow the Tegra X1 Technical Reference Manual.
type registers struct {
	COMMAND      mmio.R32     // 0x000
	COMMAND2     mmio.R32     // 0x004
	CS_TIMING1   mmio.R32     // 0x008
	CS_TIMING2   mmio.R32     // 0x00C
	TRANS_STATUS mmio.R32     // 0x010
	FIFO_STATUS  mmio.R32     // 0x014
	TX_DATA      mmio.R32     // 0x018
	RX_DATA      mmio.R32     // 0x01C
	DMA_CTL      mmio.R32     // 0x020
	DMA_BLK_SIZE mmio.R32     // 0x024
	_            [56]mmio.R32 // 0x028 .. 0x104
	TX_FIFO      mmio.R32     // 0x108
	_            [31]mmio.R32 // 0x10C .. 0x184
	RX_FIFO      mmio.R32     // 0x188
}

// SPI_COMMAND bit assignments.
const (
	cmdBitLengthMsk uint32 = 0x1F << 0 // transfer word size minus one
	cmdBitLength8   uint32 = 7 << 0    // 8-bit words
	cmdPacked       uint32 = 1 << 5
	cmdTxEn         uint32 = 1 << 11
	cmdRxEn         uint32 = 1 << 12
	cmdCsSwVal      uint32 = 1 << 20 // software chip-select line value
	cmdCsSwHw       uint32 = 1 << 21 // chip-select under software control
	cmdCsSelMsk     uint32 = 0x3 << 26
	cmdPIO          uint32 = 1 << 31 // trigger a PIO transaction
)

// SPI_TRANS_STATUS bit assignments.
const (
	transStatusRdy uint32 = 1 << 30
)

// SPI_FIFO_STATUS bit assignments.
const (
	fifoStatusRxEmpty uint32 = 1 << 0
	fifoStatusRxFull  uint32 = 1 << 1
	fifoStatusTxEmpty uint32 = 1 << 2
	fifoStatusTxFull  uint32 = 1 << 3
	fifoStatusRxUnr   uint32 = 1 << 4
	fifoStatusRxOvf   uint32 = 1 << 5
	fifoStatusTxUnr   uint32 = 1 << 6
	fifoStatusTxOvf   uint32 = 1 << 7
	fifoStatusErr     uint32 = 1 << 8
	fifoStatusTxFlush uint32 = 1 << 14
	fifoStatusRxFlush uint32 = 1 << 15

	// All sticky error bits, cleared together on recovery.
	fifoStatusErrBits = fifoStatusErr |
		fifoStatusTxOvf | fifoStatusTxUnr |
		fifoStatusRxOvf | fifoStatusRxUnr
)
