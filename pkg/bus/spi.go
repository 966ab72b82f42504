// Package bus opens the peripheral buses of the board.
package bus

import (
	"fmt"

	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

type txer interface {
	Tx(w, r []byte) error
}

// SPI is a connected SPI device. It performs one full-duplex transfer per Tx.
type SPI struct {
	// Idle is clocked out when there's less to send than to receive.
	Idle byte

	name string
	port spi.PortCloser
	conn txer
}

// OpenSPI opens the SPI port by name ("" for the first one available)
// and connects to it with 8-bit words.
func OpenSPI(name string, freq physic.Frequency, mode spi.Mode) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", name, err)
	}
	conn, err := port.Connect(freq, mode, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect spi %q: %w", name, err)
	}
	return &SPI{name: name, port: port, conn: conn}, nil
}

// Tx sends w and fills r in a single transfer. The transfer is as long as
// the longer of the two: w is padded with Idle, extra received bytes are
// dropped.
func (s *SPI) Tx(w, r []byte) error {
	switch {
	case len(w) == len(r):
		return s.conn.Tx(w, r)
	case len(w) < len(r):
		padded := make([]byte, len(r))
		copy(padded, w)
		for i := len(w); i < len(padded); i++ {
			padded[i] = s.Idle
		}
		return s.conn.Tx(padded, r)
	default:
		in := make([]byte, len(w))
		if err := s.conn.Tx(w, in); err != nil {
			return err
		}
		copy(r, in)
		return nil
	}
}

// String implements fmt.Stringer.
func (s *SPI) String() string {
	if s.name == "" {
		return "spi"
	}
	return s.name
}

// Close implements io.Closer.
func (s *SPI) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}
