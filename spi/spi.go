// Package spi is the driver for the Tegra X1 Serial Peripheral
// Interface controllers, covering polling PIO transfers on a single
// software-driven chip-select line.
//
// The driver assumes exactly one owner per controller: it performs no
// locking, and concurrent calls against the same controller corrupt
// the transaction in flight. Waits for controller readiness and FIFO
// flushes are unbounded busy-wait loops; a ready flag that never sets
// indicates a hardware fault this layer cannot recover from.
package spi

import (
	"encoding/binary"
	"errors"

	"github.com/roblabla/libtegra/timerus"
)

// FIFODepth is the capacity of each hardware FIFO in 32-bit words. In
// 8-bit unpacked mode every word carries a single byte, so it is also
// the largest PIO receive in bytes.
const FIFODepth = 64

// SPI errors.
var (
	// ErrTransfer is reported when the controller flags an error after
	// a transaction. The underlying overflow/underrun cause is not
	// distinguished; the sticky error bits are cleared before the
	// error is returned, so the controller is ready for a new attempt.
	ErrTransfer = errors.New("spi: transfer failed")

	// ErrPacketSize is reported by SendPacket for buffers that are not
	// exactly one 4-byte PIO packet.
	ErrPacketSize = errors.New("spi: packet must be exactly 4 bytes")

	// ErrBufferSize is reported by ReceivePacket for buffers that do
	// not fit the receive FIFO.
	ErrBufferSize = errors.New("spi: buffer does not fit the FIFO")
)

// Spi drives one of the four SPI controllers.
//
// Instances of this structure should never be created manually; use
// the SPI1 through SPI4 handles, which are bound to the controllers'
// fixed register blocks.
type Spi struct {
	// r points to the controller's hardware registers.
	r *registers
}

// Init configures the controller's initial mode: chip-select under
// software control and deasserted, 8-bit unpacked transfers, most
// significant bit first. It then flushes both FIFOs and asserts
// chip-select line 0.
//
// Init must be called once before any transfer, after the pinmux has
// routed the controller's pins.
func (s *Spi) Init() {
	// Software chip-select held high, 8-bit unpacked, MSB first.
	cmd := s.r.COMMAND.Get()
	cmd |= cmdCsSwHw | cmdCsSwVal
	cmd = cmd&^(cmdPacked|cmdBitLengthMsk) | cmdBitLength8
	s.r.COMMAND.Set(cmd)

	s.FlushFIFOs()

	// Enforce chip-select line 0 for now and drive chip-select low.
	cmd = s.r.COMMAND.Get()
	cmd &^= cmdCsSelMsk | cmdCsSwVal
	s.r.COMMAND.Set(cmd)
}

// FlushFIFOs discards any buffered data in both the transmit and the
// receive FIFO. It blocks until the controller is idle and the flush
// has completed.
func (s *Spi) FlushFIFOs() {
	// The controller must be idle before a flush is issued.
	s.waitUntilReady()

	s.r.FIFO_STATUS.SetBits(fifoStatusTxFlush | fifoStatusRxFlush)

	for s.r.FIFO_STATUS.HasBits(fifoStatusRxFlush) &&
		s.r.FIFO_STATUS.HasBits(fifoStatusTxFlush) {
		// Wait for the flush bits to deassert.
	}
}

// SendPacket transmits one 4-byte PIO packet and blocks until the
// transaction has completed. data must be exactly 4 bytes; longer
// transfers are chunked by Tx.
//
// On ErrTransfer the controller's error state has already been
// cleared and the caller may retry the packet.
func (s *Spi) SendPacket(data []byte) error {
	if len(data) != 4 {
		return ErrPacketSize
	}

	s.FlushFIFOs()

	s.setFormat()
	s.r.DMA_BLK_SIZE.Set(uint32(len(data)) - 1)
	s.r.TRANS_STATUS.ClearBits(transStatusRdy)
	s.r.COMMAND.SetBits(cmdTxEn)

	// Load the packet as a single little-endian FIFO word.
	s.r.TX_FIFO.Set(binary.LittleEndian.Uint32(data))

	s.trigger()
	s.waitUntilReady()

	s.r.COMMAND.ClearBits(cmdTxEn)

	if s.r.FIFO_STATUS.HasBits(fifoStatusErr) {
		s.clearFIFOStatus()
		return ErrTransfer
	}
	return nil
}

// ReceivePacket reads len(data) bytes in one PIO transaction and
// blocks until it has completed. data must fit the receive FIFO, at
// most FIFODepth bytes.
//
// On ErrTransfer the controller's error state has already been
// cleared, no bytes are drained and the caller may retry.
func (s *Spi) ReceivePacket(data []byte) error {
	if len(data) == 0 || len(data) > FIFODepth {
		return ErrBufferSize
	}

	s.FlushFIFOs()

	s.setFormat()
	s.r.DMA_BLK_SIZE.Set(uint32(len(data)) - 1)
	s.r.TRANS_STATUS.ClearBits(transStatusRdy)
	s.r.COMMAND.SetBits(cmdRxEn)

	s.trigger()
	s.waitUntilReady()

	s.r.COMMAND.ClearBits(cmdRxEn)

	if s.r.FIFO_STATUS.HasBits(fifoStatusErr) {
		s.clearFIFOStatus()
		return ErrTransfer
	}

	// Drain the FIFO, one byte per word in 8-bit unpacked mode.
	for i := range data {
		data[i] = byte(s.r.RX_FIFO.Get())
	}
	return nil
}

// setFormat selects 8-bit transfers, unpacked mode, most significant
// bit first.
func (s *Spi) setFormat() {
	cmd := s.r.COMMAND.Get()
	cmd = cmd&^(cmdPacked|cmdBitLengthMsk) | cmdBitLength8
	s.r.COMMAND.Set(cmd)
}

// trigger starts the programmed transaction. The settle delay before
// the PIO bit and the dummy read after it are required by the
// hardware; removing or reordering them races the ready flag.
func (s *Spi) trigger() {
	// Let the FIFO and command writes stabilize before the PIO bit.
	timerus.Wait(2)

	s.r.COMMAND.SetBits(cmdPIO)

	// Give the controller a moment to latch the transaction.
	timerus.Wait(1)

	// Dummy read; polling RDY without it can observe a stale value.
	s.r.COMMAND.Get()
}

// waitUntilReady blocks until the controller has completed all
// transactions. There is no timeout; see the package comment.
func (s *Spi) waitUntilReady() {
	for !s.r.TRANS_STATUS.HasBits(transStatusRdy) {
		// Wait until all transactions are completed.
	}
}

// clearFIFOStatus clears the sticky error bits of SPI_FIFO_STATUS in
// a single write.
func (s *Spi) clearFIFOStatus() {
	s.r.FIFO_STATUS.ClearBits(fifoStatusErrBits)
}
