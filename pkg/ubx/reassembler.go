package ubx

import (
	"context"
	"fmt"

	"github.com/golang/glog"
)

// Transceiver performs one synchronous full-duplex transfer.
// w is sent (nil sends nothing meaningful) and r is always filled completely.
type Transceiver interface {
	Tx(w, r []byte) error
}

// TransceiveFunc is func type of Transceiver.
type TransceiveFunc func(w, r []byte) error

// Tx implements Transceiver.
func (f TransceiveFunc) Tx(w, r []byte) error {
	return f(w, r)
}

// Defaults used by NewReassembler.
const (
	DefaultChunkSize   = 0x100
	DefaultMaxAttempts = 15
	DefaultCapacity    = 0x100
)

// Reassembler polls a Transceiver with fixed-size transfers and captures
// one complete packet.
type Reassembler struct {
	Transceiver Transceiver
	// Command is sent in the first transfer only.
	Command []byte
	// ChunkSize is the number of bytes read per transfer.
	ChunkSize int
	// MaxAttempts bounds the number of transfers.
	MaxAttempts int
	// Capacity is the largest packet accepted.
	Capacity int
}

// NewReassembler creates a Reassembler which polls the MON-VER response.
func NewReassembler(t Transceiver) *Reassembler {
	return &Reassembler{
		Transceiver: t,
		Command:     PollVersion,
		ChunkSize:   DefaultChunkSize,
		MaxAttempts: DefaultMaxAttempts,
		Capacity:    DefaultCapacity,
	}
}

// WithCommand sets the command sent in the first transfer.
func (r *Reassembler) WithCommand(cmd []byte) *Reassembler {
	r.Command = cmd
	return r
}

func (r *Reassembler) validate() error {
	if r.Transceiver == nil {
		return fmt.Errorf("ubx: no transceiver")
	}
	if r.ChunkSize <= 0 {
		return fmt.Errorf("ubx: invalid chunk size %d", r.ChunkSize)
	}
	if r.MaxAttempts <= 0 {
		return fmt.Errorf("ubx: invalid attempt budget %d", r.MaxAttempts)
	}
	if r.Capacity < EnvelopeLen {
		return fmt.Errorf("ubx: capacity %d below minimum packet length %d", r.Capacity, EnvelopeLen)
	}
	return nil
}

// Capture runs transfers until a complete packet is assembled, the attempt
// budget is exhausted (ErrCaptureTimeout), the declared length exceeds
// Capacity (ErrMalformedLength) or ctx is done. A failed transfer is logged
// and counted as a round without data.
func (r *Reassembler) Capture(ctx context.Context) ([]byte, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	sess := NewSession(r.Capacity)
	chunk := make([]byte, r.ChunkSize)
	w := r.Command
	for sess.Attempts() < r.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err := r.Transceiver.Tx(w, chunk)
		w = nil
		if err != nil {
			glog.Warning(&TransportError{Round: sess.Attempts() + 1, Err: err})
			sess.Feed(nil)
			continue
		}
		searching := sess.State() == StateSearching
		done, err := sess.Feed(chunk)
		if err != nil {
			glog.Errorf("round %d: %v", sess.Attempts(), err)
			return nil, err
		}
		switch {
		case sess.State() == StateSearching:
			glog.V(2).Infof("round %d: waiting...", sess.Attempts())
		case searching:
			glog.V(1).Infof("round %d: found first byte", sess.Attempts())
			fallthrough
		default:
			glog.V(2).Infof("round %d: processing... %d bytes, %d remaining", sess.Attempts(), sess.Len(), sess.Remaining())
		}
		if done {
			return sess.Packet(), nil
		}
	}
	if glog.V(1) && sess.Len() > 0 {
		glog.Infof("partial packet: % x", sess.Packet())
	}
	return nil, fmt.Errorf("%w: %d attempts, %d bytes buffered", ErrCaptureTimeout, sess.Attempts(), sess.Len())
}
