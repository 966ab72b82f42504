package ubx

import (
	"errors"
	"fmt"
)

var (
	// ErrCaptureTimeout indicates the attempt budget was exhausted before
	// a complete packet was assembled.
	ErrCaptureTimeout = errors.New("capture timeout")
	// ErrMalformedLength indicates the declared packet length doesn't fit
	// in the output buffer.
	ErrMalformedLength = errors.New("malformed length")
	// ErrBufferFull indicates a write beyond the buffer capacity.
	ErrBufferFull = errors.New("buffer full")
	// ErrBadSync indicates the packet doesn't start with the sync marker.
	ErrBadSync = errors.New("bad sync marker")
	// ErrShortPacket indicates fewer bytes than the packet declares.
	ErrShortPacket = errors.New("short packet")
	// ErrChecksum indicates a checksum mismatch.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrUnexpectedMessage indicates a packet of another class/id.
	ErrUnexpectedMessage = errors.New("unexpected message")
)

// TransportError wraps a failed transfer in a capture round.
type TransportError struct {
	Round int
	Err   error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transfer %d failed: %v", e.Round, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// LengthError reports a declared packet length exceeding the capacity.
type LengthError struct {
	Total    int
	Capacity int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: packet of %d bytes exceeds capacity %d", ErrMalformedLength, e.Total, e.Capacity)
}

// Is matches ErrMalformedLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrMalformedLength
}
