// Package eeprom provides byte-addressable persistent storage devices.
package eeprom

import (
	"errors"
	"fmt"
	"io"
)

// ErrOutOfRange indicates an access beyond the device size.
var ErrOutOfRange = errors.New("eeprom: access out of range")

// Device is a byte-addressable EEPROM.
type Device interface {
	io.ReaderAt
	io.WriterAt
	// Size returns the capacity in bytes.
	Size() int
}

// erased is the content of a blank EEPROM cell.
const erased byte = 0xff

func checkRange(off int64, n, size int) error {
	if off < 0 || off+int64(n) > int64(size) {
		return fmt.Errorf("%w: [%d, %d) of %d bytes", ErrOutOfRange, off, off+int64(n), size)
	}
	return nil
}
