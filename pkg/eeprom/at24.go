package eeprom

import (
	"fmt"
	"time"
)

type i2cTxer interface {
	Tx(addr uint16, w, r []byte) error
}

// AT24 is a 24Cxx series I2C EEPROM.
type AT24 struct {
	// WriteDelay is the write cycle time waited after each page write.
	WriteDelay time.Duration

	bus      i2cTxer
	addr     uint16
	size     int
	pageSize int
}

// DefaultWriteDelay is the maximum write cycle time of most 24Cxx parts.
const DefaultWriteDelay = 5 * time.Millisecond

// NewAT24 creates an AT24 at the I2C address. Parts up to 16 Kbit use a
// single word address byte with the block number in the device address,
// larger ones use two address bytes.
func NewAT24(bus i2cTxer, addr uint16, size, pageSize int) *AT24 {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &AT24{
		WriteDelay: DefaultWriteDelay,
		bus:        bus,
		addr:       addr,
		size:       size,
		pageSize:   pageSize,
	}
}

// Size implements Device.
func (e *AT24) Size() int {
	return e.size
}

func (e *AT24) address(off int64) (uint16, []byte) {
	if e.size <= 2048 {
		return e.addr | uint16(off>>8)&0x7, []byte{byte(off)}
	}
	return e.addr, []byte{byte(off >> 8), byte(off)}
}

// ReadAt implements io.ReaderAt. Reads crossing a 256-byte block of a
// single-address-byte part are split.
func (e *AT24) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(off, len(p), e.size); err != nil {
		return 0, err
	}
	n := 0
	for n < len(p) {
		cur := off + int64(n)
		l := len(p) - n
		if e.size <= 2048 {
			if rest := 256 - int(cur&0xff); l > rest {
				l = rest
			}
		}
		dev, w := e.address(cur)
		if err := e.bus.Tx(dev, w, p[n:n+l]); err != nil {
			return n, fmt.Errorf("read at %d: %w", cur, err)
		}
		n += l
	}
	return n, nil
}

// WriteAt implements io.WriterAt. Writes are split at page boundaries.
func (e *AT24) WriteAt(p []byte, off int64) (int, error) {
	if err := checkRange(off, len(p), e.size); err != nil {
		return 0, err
	}
	n := 0
	for n < len(p) {
		cur := off + int64(n)
		l := e.pageSize - int(cur%int64(e.pageSize))
		if l > len(p)-n {
			l = len(p) - n
		}
		dev, w := e.address(cur)
		if err := e.bus.Tx(dev, append(w, p[n:n+l]...), nil); err != nil {
			return n, fmt.Errorf("write at %d: %w", cur, err)
		}
		n += l
		if e.WriteDelay > 0 {
			time.Sleep(e.WriteDelay)
		}
	}
	return n, nil
}

// String implements fmt.Stringer.
func (e *AT24) String() string {
	return fmt.Sprintf("at24@%#x", e.addr)
}
