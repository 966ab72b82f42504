package ubx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const filler byte = 0xff

// scriptedTransceiver returns one scripted chunk per transfer and filler
// once the script runs out. A round listed in errs fails without data.
type scriptedTransceiver struct {
	chunks [][]byte
	errs   map[int]error
	sent   [][]byte
	rounds int
}

func (s *scriptedTransceiver) Tx(w, r []byte) error {
	s.sent = append(s.sent, append([]byte(nil), w...))
	round := s.rounds
	s.rounds++
	if err := s.errs[round]; err != nil {
		return err
	}
	for i := range r {
		r[i] = filler
	}
	if round < len(s.chunks) {
		copy(r, s.chunks[round])
	}
	return nil
}

// chunked places pkt at offset in a filler stream and cuts it into
// chunks of size bytes.
func chunked(pkt []byte, offset, size int) [][]byte {
	stream := append(bytes.Repeat([]byte{filler}, offset), pkt...)
	var chunks [][]byte
	for len(stream) > 0 {
		n := size
		if n > len(stream) {
			n = len(stream)
		}
		chunk := bytes.Repeat([]byte{filler}, size)
		copy(chunk, stream[:n])
		chunks = append(chunks, chunk)
		stream = stream[n:]
	}
	return chunks
}

func newTestReassembler(t Transceiver, chunkSize, capacity int) *Reassembler {
	r := NewReassembler(t)
	r.ChunkSize, r.Capacity = chunkSize, capacity
	return r
}

func TestCaptureMarkerAtChunkEnd(t *testing.T) {
	chunk1 := bytes.Repeat([]byte{filler}, 256)
	chunk1[254], chunk1[255] = 0xB5, 0x62
	chunk2 := bytes.Repeat([]byte{filler}, 256)
	copy(chunk2, []byte{0x0A, 0x04, 0x00, 0x00, 0x0E, 0x34})
	tr := &scriptedTransceiver{chunks: [][]byte{chunk1, chunk2}}

	pkt, err := NewReassembler(tr).Capture(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte{0xB5, 0x62, 0x0A, 0x04, 0x00, 0x00, 0x0E, 0x34}, pkt)
	require.Equal(t, 2, tr.rounds)
	require.Equal(t, PollVersion, tr.sent[0])
	require.Empty(t, tr.sent[1])
}

func TestCaptureNoMarker(t *testing.T) {
	tr := &scriptedTransceiver{}
	_, err := NewReassembler(tr).Capture(context.Background())
	require.ErrorIs(t, err, ErrCaptureTimeout)
	require.Equal(t, DefaultMaxAttempts, tr.rounds)
	for n, w := range tr.sent[1:] {
		require.Emptyf(t, w, "round %d sent data", n+2)
	}
}

func TestCaptureSplitOffsets(t *testing.T) {
	testCases := []struct {
		name      string
		payload   int
		chunkSize int
		capacity  int
	}{
		{"empty payload", 0, 256, 256},
		{"short payload", 20, 256, 256},
		{"payload spans chunks", 300, 256, 512},
		{"tiny chunks", 3, 4, 16},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := make([]byte, tc.payload)
			for i := range payload {
				payload[i] = byte(i)
			}
			pkt := (&Packet{Class: ClassMON, ID: IDMONVER, Payload: payload}).Bytes()
			for offset := 0; offset <= tc.chunkSize; offset++ {
				tr := &scriptedTransceiver{chunks: chunked(pkt, offset, tc.chunkSize)}
				r := newTestReassembler(tr, tc.chunkSize, tc.capacity)
				r.MaxAttempts = len(tr.chunks)
				out, err := r.Capture(context.Background())
				require.NoErrorf(t, err, "offset %d", offset)
				require.Equalf(t, pkt, out, "offset %d", offset)
				require.Equalf(t, tc.payload+EnvelopeLen, len(out), "offset %d", offset)
			}
		})
	}
}

func TestCaptureMalformedLength(t *testing.T) {
	header := []byte{0xB5, 0x62, 0x0A, 0x04, 0x00, 0x02}
	for offset := 0; offset <= 16; offset++ {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			tr := &scriptedTransceiver{chunks: chunked(header, offset, 16)}
			_, err := newTestReassembler(tr, 16, 256).Capture(context.Background())
			require.ErrorIs(t, err, ErrMalformedLength)
			var lerr *LengthError
			require.True(t, errors.As(err, &lerr))
			require.Equal(t, 0x200+EnvelopeLen, lerr.Total)
			require.Equal(t, 256, lerr.Capacity)
			require.Equal(t, len(tr.chunks), tr.rounds, "capture should stop right after the header")
		})
	}
}

func TestCaptureTransportErrors(t *testing.T) {
	pkt := (&Packet{Class: ClassMON, ID: IDMONVER, Payload: []byte{1, 2, 3}}).Bytes()
	chunks := chunked(pkt, 6, 8)
	require.Len(t, chunks, 3)

	// round 2 fails; the script is consumed per round, so shift it.
	script := [][]byte{chunks[0], nil, chunks[1], chunks[2]}
	tr := &scriptedTransceiver{
		chunks: script,
		errs:   map[int]error{1: errors.New("bus error")},
	}
	r := newTestReassembler(tr, 8, 64)
	out, err := r.Capture(context.Background())
	require.NoError(t, err)
	require.Equal(t, pkt, out)
	require.Equal(t, 4, tr.rounds)
}

func TestCaptureTransportErrorsExhaustBudget(t *testing.T) {
	errs := make(map[int]error)
	for i := 0; i < DefaultMaxAttempts; i++ {
		errs[i] = errors.New("bus error")
	}
	tr := &scriptedTransceiver{
		chunks: [][]byte{PollVersion},
		errs:   errs,
	}
	_, err := NewReassembler(tr).Capture(context.Background())
	require.ErrorIs(t, err, ErrCaptureTimeout)
	require.Equal(t, DefaultMaxAttempts, tr.rounds)
}

func TestCaptureIndependentInstances(t *testing.T) {
	pkt := (&Packet{Class: ClassMON, ID: IDMONVER, Payload: bytes.Repeat([]byte{'v'}, 40)}).Bytes()
	chunks := chunked(pkt, 250, 256)

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		tr := &scriptedTransceiver{chunks: chunks}
		out, err := NewReassembler(tr).Capture(context.Background())
		require.NoError(t, err)
		outputs = append(outputs, out)
	}
	require.Equal(t, outputs[0], outputs[1])
	require.Equal(t, pkt, outputs[0])
}

func TestCaptureCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := TransceiveFunc(func(w, r []byte) error {
		cancel()
		for i := range r {
			r[i] = filler
		}
		return nil
	})
	_, err := NewReassembler(tr).Capture(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReassemblerValidate(t *testing.T) {
	tr := &scriptedTransceiver{}
	testCases := []struct {
		name   string
		modify func(*Reassembler)
	}{
		{"no transceiver", func(r *Reassembler) { r.Transceiver = nil }},
		{"zero chunk size", func(r *Reassembler) { r.ChunkSize = 0 }},
		{"zero attempts", func(r *Reassembler) { r.MaxAttempts = 0 }},
		{"capacity below envelope", func(r *Reassembler) { r.Capacity = EnvelopeLen - 1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReassembler(tr)
			tc.modify(r)
			_, err := r.Capture(context.Background())
			require.Error(t, err)
			require.Zero(t, tr.rounds)
		})
	}
}
