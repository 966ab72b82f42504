// Package report publishes bring-up results as typed protobuf packets.
package report

import "io"

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// PacketWriteCloser is a PacketWriter which must be closed.
type PacketWriteCloser interface {
	PacketWriter
	io.Closer
}
