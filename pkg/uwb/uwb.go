// Package uwb talks to a DW1000 UWB transceiver over SPI.
package uwb

import (
	"encoding/binary"
	"fmt"
)

// Transceiver performs one full-duplex SPI transfer.
type Transceiver interface {
	Tx(w, r []byte) error
}

// Registers.
const (
	RegDevID byte = 0x00
)

// RIDTag is the register identification tag of the DW1000 family.
const RIDTag uint16 = 0xDECA

// regMask keeps the header a plain read without sub-index.
const regMask byte = 0x3f

// ReadRegister reads n bytes from reg at sub-index 0.
func ReadRegister(t Transceiver, reg byte, n int) ([]byte, error) {
	r := make([]byte, 1+n)
	if err := t.Tx([]byte{reg & regMask}, r); err != nil {
		return nil, fmt.Errorf("read register %#02x: %w", reg, err)
	}
	return r[1:], nil
}

// DeviceID is the decoded DEV_ID register.
type DeviceID struct {
	RIDTag   uint16 `json:"rid_tag"`
	Model    uint8  `json:"model"`
	Version  uint8  `json:"version"`
	Revision uint8  `json:"revision"`
}

// ParseDeviceID decodes the 32-bit DEV_ID value.
func ParseDeviceID(v uint32) DeviceID {
	return DeviceID{
		RIDTag:   uint16(v >> 16),
		Model:    uint8(v >> 8),
		Version:  uint8(v>>4) & 0xf,
		Revision: uint8(v) & 0xf,
	}
}

// Uint32 encodes the register value.
func (id DeviceID) Uint32() uint32 {
	return uint32(id.RIDTag)<<16 | uint32(id.Model)<<8 | uint32(id.Version&0xf)<<4 | uint32(id.Revision&0xf)
}

func (id DeviceID) String() string {
	return fmt.Sprintf("%04X model %d ver %d rev %d", id.RIDTag, id.Model, id.Version, id.Revision)
}

// UnexpectedIDError is returned when DEV_ID doesn't carry RIDTag,
// usually a wiring or bus mode problem.
type UnexpectedIDError struct {
	Got DeviceID
}

func (e *UnexpectedIDError) Error() string {
	return fmt.Sprintf("unexpected device id %08X, expected tag %04X", e.Got.Uint32(), RIDTag)
}

// ReadDeviceID reads and checks DEV_ID.
func ReadDeviceID(t Transceiver) (DeviceID, error) {
	data, err := ReadRegister(t, RegDevID, 4)
	if err != nil {
		return DeviceID{}, err
	}
	id := ParseDeviceID(binary.LittleEndian.Uint32(data))
	if id.RIDTag != RIDTag {
		return id, &UnexpectedIDError{Got: id}
	}
	return id, nil
}
