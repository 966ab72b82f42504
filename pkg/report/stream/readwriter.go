// Package stream carries report packets over a byte stream.
package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// MaxPacketLen bounds a packet read from the stream.
const MaxPacketLen = 1 << 20

// ReadWriter implements report.PacketReadWriter.
// Each packet is prefixed by 4-byte (little-endian) indicate the length.
type ReadWriter struct {
	io.ReadWriter
}

// New creates a ReadWriter with io.ReadWriter.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{s}
}

// ReadPacket implements report.PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPacketLen {
		return nil, fmt.Errorf("packet length %d exceeds %d", size, MaxPacketLen)
	}
	pkt := make([]byte, size)
	if _, err := io.ReadFull(p, pkt); err != nil {
		return nil, err
	}
	return pkt, nil
}

// WritePacket implements report.PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	buf := make([]byte, 4+len(pkt))
	binary.LittleEndian.PutUint32(buf, uint32(len(pkt)))
	copy(buf[4:], pkt)
	_, err := p.Write(buf)
	return err
}

// Close closes the underlying stream if it's an io.Closer.
func (p *ReadWriter) Close() error {
	if c, ok := p.ReadWriter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type stdout struct {
	io.Reader
	io.Writer
}

// OpenFile appends packets to the file at path, "-" for stdout.
func OpenFile(path string) (*ReadWriter, error) {
	if path == "-" {
		return New(stdout{Reader: os.Stdin, Writer: os.Stdout}), nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return New(f), nil
}
