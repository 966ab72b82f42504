// Package bootcount keeps a persistent boot counter in an EEPROM.
package bootcount

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/robotalks/bringup/pkg/eeprom"
)

// Magic marks an initialized record.
const Magic uint32 = 0xEE9703

// Values is the persistent record, stored little-endian.
type Values struct {
	Magic     uint32
	BootCount uint32
}

// RecordLen is the encoded size of Values.
const RecordLen = 8

// Read reads the record at off.
func Read(dev eeprom.Device, off int64) (v Values, err error) {
	err = binary.Read(io.NewSectionReader(dev, off, RecordLen), binary.LittleEndian, &v)
	return
}

// Write writes the record at off.
func Write(dev eeprom.Device, off int64, v Values) error {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, &v)
	_, err := dev.WriteAt(buf.Bytes(), off)
	return err
}

// VerifyError reports a record read back differently from what was written.
type VerifyError struct {
	Expected Values
	Got      Values
}

// Error implements error.
func (e *VerifyError) Error() string {
	var msgs []string
	if e.Expected.Magic != e.Got.Magic {
		msgs = append(msgs, fmt.Sprintf("magic byte differs, expected %06X got %06X", e.Expected.Magic, e.Got.Magic))
	}
	if e.Expected.BootCount != e.Got.BootCount {
		msgs = append(msgs, fmt.Sprintf("boot count differs, expected %d got %d", e.Expected.BootCount, e.Got.BootCount))
	}
	return strings.Join(msgs, "; ")
}

// Counter increments the boot count stored on Device at Offset.
type Counter struct {
	Device eeprom.Device
	Offset int64
}

// New creates a Counter at offset 0.
func New(dev eeprom.Device) *Counter {
	return &Counter{Device: dev}
}

// Increment returns how many times the device booted before and stores the
// incremented count. An uninitialized record counts as zero boots. The
// record is read back after writing, a mismatch returns *VerifyError along
// with the previous count.
func (c *Counter) Increment() (uint32, error) {
	if size := c.Device.Size(); c.Offset < 0 || c.Offset+RecordLen > int64(size) {
		return 0, fmt.Errorf("record at %d doesn't fit in %d bytes: %w", c.Offset, size, eeprom.ErrOutOfRange)
	}
	v, err := Read(c.Device, c.Offset)
	if err != nil {
		return 0, fmt.Errorf("eeprom read failed: %w", err)
	}
	if v.Magic != Magic {
		v = Values{Magic: Magic}
	}
	booted := v.BootCount
	v.BootCount++
	if err := Write(c.Device, c.Offset, v); err != nil {
		return booted, fmt.Errorf("eeprom write failed: %w", err)
	}
	got, err := Read(c.Device, c.Offset)
	if err != nil {
		return booted, fmt.Errorf("eeprom read failed: %w", err)
	}
	if got != v {
		return booted, &VerifyError{Expected: v, Got: got}
	}
	return booted, nil
}
