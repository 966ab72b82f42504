package ubx

import (
	"encoding/binary"
	"io"
)

// Framing constants.
const (
	Sync1 byte = 0xB5
	Sync2 byte = 0x62

	// HeaderLen is the size of sync, class, id and length.
	HeaderLen = 6
	// EnvelopeLen is the size of header and checksum.
	EnvelopeLen = 8
	// MaxPayloadLen is the largest payload the length field can declare.
	MaxPayloadLen = 0xffff
	// MaxPacketLen is the largest possible packet.
	MaxPacketLen = MaxPayloadLen + EnvelopeLen
)

// Message classes and ids.
const (
	ClassNAV byte = 0x01
	ClassCFG byte = 0x06
	ClassMON byte = 0x0A

	IDMONVER byte = 0x04
	IDNAVPVT byte = 0x07
)

var syncMarker = []byte{Sync1, Sync2}

// PollVersion is the MON-VER poll request.
var PollVersion = (&Packet{Class: ClassMON, ID: IDMONVER}).Bytes()

// Packet is a decoded UBX packet.
type Packet struct {
	Class   byte
	ID      byte
	Payload []byte
}

// Checksum calculates the 8-bit Fletcher checksum.
func Checksum(data []byte) (a, b byte) {
	for _, c := range data {
		a += c
		b += a
	}
	return
}

// PacketLen returns the total packet length declared by header.
// header must contain at least HeaderLen bytes.
func PacketLen(header []byte) int {
	return int(binary.LittleEndian.Uint16(header[4:HeaderLen])) + EnvelopeLen
}

// Bytes returns encoded bytes for sending.
// Payload beyond MaxPayloadLen is dropped.
func (p *Packet) Bytes() []byte {
	payload := p.Payload
	if len(payload) > MaxPayloadLen {
		payload = payload[:MaxPayloadLen]
	}
	b := make([]byte, len(payload)+EnvelopeLen)
	b[0], b[1], b[2], b[3] = Sync1, Sync2, p.Class, p.ID
	binary.LittleEndian.PutUint16(b[4:], uint16(len(payload)))
	copy(b[HeaderLen:], payload)
	n := HeaderLen + len(payload)
	b[n], b[n+1] = Checksum(b[2:n])
	return b
}

// WriteTo writes encoded bytes.
func (p *Packet) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// Decode decodes a complete packet and verifies the checksum.
// Bytes after the declared length are ignored.
func Decode(data []byte) (*Packet, error) {
	if len(data) < EnvelopeLen {
		return nil, ErrShortPacket
	}
	if data[0] != Sync1 || data[1] != Sync2 {
		return nil, ErrBadSync
	}
	total := PacketLen(data)
	if len(data) < total {
		return nil, ErrShortPacket
	}
	end := total - 2
	if a, b := Checksum(data[2:end]); a != data[end] || b != data[end+1] {
		return nil, ErrChecksum
	}
	payload := make([]byte, end-HeaderLen)
	copy(payload, data[HeaderLen:end])
	return &Packet{Class: data[2], ID: data[3], Payload: payload}, nil
}
