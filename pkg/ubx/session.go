package ubx

import "bytes"

// SessionState indicates the progress of reassembling a packet.
type SessionState int

const (
	// StateSearching means the sync marker hasn't been found.
	StateSearching SessionState = iota
	// StateHeader means the marker is found and the length field is pending.
	StateHeader
	// StateBody means the length is known and more bytes are expected.
	StateBody
	// StateComplete means a full packet has been assembled.
	StateComplete
	// StateFailed means the declared length can't be assembled.
	StateFailed
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateHeader:
		return "header"
	case StateBody:
		return "body"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Session reassembles one packet from a sequence of chunks.
// A Session is used for a single packet and must not be shared.
type Session struct {
	buf      *Buffer
	found    bool
	lastSync bool // previous chunk ended with Sync1
	total    int  // declared packet length, 0 until the header is complete
	attempts int
	err      error
}

// NewSession creates a Session which assembles packets up to capacity bytes.
func NewSession(capacity int) *Session {
	return &Session{buf: NewBuffer(capacity)}
}

// State gets the current state.
func (s *Session) State() SessionState {
	switch {
	case s.err != nil:
		return StateFailed
	case !s.found:
		return StateSearching
	case s.total == 0:
		return StateHeader
	case s.buf.Len() < s.total:
		return StateBody
	}
	return StateComplete
}

// Attempts returns the number of chunks fed so far.
func (s *Session) Attempts() int {
	return s.attempts
}

// Len returns the number of packet bytes collected.
func (s *Session) Len() int {
	return s.buf.Len()
}

// Remaining returns the number of bytes still expected, or -1 if the
// length field hasn't been received.
func (s *Session) Remaining() int {
	if s.total == 0 {
		return -1
	}
	return s.total - s.buf.Len()
}

// Packet returns the assembled bytes. They are a complete packet only in
// StateComplete; otherwise the partial bytes are returned for diagnostics.
func (s *Session) Packet() []byte {
	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())
	return out
}

// Feed consumes one chunk and reports whether the packet is complete.
// A nil chunk counts as a round without new bytes and breaks a sync
// marker split across rounds. Bytes after the end of the packet are
// ignored. Once failed, Feed keeps returning the same error.
func (s *Session) Feed(chunk []byte) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.complete() {
		return true, nil
	}
	s.attempts++
	if len(chunk) == 0 {
		s.lastSync = false
		return false, nil
	}

	i := 0
	if !s.found {
		start, ok := s.search(chunk)
		if !ok {
			return false, nil
		}
		i = start
	}

	for i < len(chunk) {
		n := s.wanted()
		if avail := len(chunk) - i; n > avail {
			n = avail
		}
		if _, err := s.buf.Write(chunk[i : i+n]); err != nil {
			s.err = err
			return false, err
		}
		i += n
		if s.total == 0 && s.buf.Len() >= HeaderLen {
			total := PacketLen(s.buf.Bytes())
			if total > s.buf.Cap() {
				s.err = &LengthError{Total: total, Capacity: s.buf.Cap()}
				return false, s.err
			}
			s.total = total
		}
		if s.complete() {
			return true, nil
		}
	}
	return false, nil
}

func (s *Session) complete() bool {
	return s.total != 0 && s.buf.Len() == s.total
}

// wanted is the number of bytes to copy before the state can advance:
// the rest of the header while the length is unknown, the rest of the
// packet afterwards.
func (s *Session) wanted() int {
	if s.total == 0 {
		return HeaderLen - s.buf.Len()
	}
	return s.total - s.buf.Len()
}

// search locates the sync marker in chunk and returns the index of its
// first byte. A marker split between the previous chunk and this one
// starts at index 0 with Sync1 already buffered.
func (s *Session) search(chunk []byte) (int, bool) {
	if s.lastSync {
		s.lastSync = false
		if chunk[0] == Sync2 {
			s.found = true
			s.buf.WriteByte(Sync1)
			return 0, true
		}
	}
	if i := bytes.Index(chunk, syncMarker); i >= 0 {
		s.found = true
		return i, true
	}
	s.lastSync = chunk[len(chunk)-1] == Sync1
	return 0, false
}
