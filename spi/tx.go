package spi

import (
	"errors"

	"tinygo.org/x/drivers"
)

// ErrFullDuplex is reported by Tx and Transfer for exchanges that
// would need to transmit and receive at the same time. The PIO flow
// is half-duplex: a transaction is either a send or a receive.
var ErrFullDuplex = errors.New("spi: full-duplex exchange not supported in pio mode")

// Spi implements the drivers.SPI interface for write-only and
// read-only transfers.
var _ drivers.SPI = (*Spi)(nil)

// Tx performs a half-duplex bus transaction.
//
// With only w set, the buffer is transmitted in 4-byte PIO packets;
// len(w) must be a multiple of 4. With only r set, the buffer is
// filled in FIFO-sized chunks. Setting both returns ErrFullDuplex.
func (s *Spi) Tx(w, r []byte) error {
	switch {
	case w == nil && r == nil:
		return nil
	case w != nil && r != nil:
		return ErrFullDuplex
	case w != nil:
		if len(w)%4 != 0 {
			return ErrPacketSize
		}
		for len(w) > 0 {
			if err := s.SendPacket(w[:4]); err != nil {
				return err
			}
			w = w[4:]
		}
	default:
		for len(r) > 0 {
			n := len(r)
			if n > FIFODepth {
				n = FIFODepth
			}
			if err := s.ReceivePacket(r[:n]); err != nil {
				return err
			}
			r = r[n:]
		}
	}
	return nil
}

// Transfer exchanges a single byte. A one-byte exchange is inherently
// full-duplex, which the PIO flow cannot do, so Transfer always
// returns ErrFullDuplex. It exists to satisfy drivers.SPI.
func (s *Spi) Transfer(b byte) (byte, error) {
	return 0, ErrFullDuplex
}
