package ubx

// Buffer is a fixed-capacity byte buffer with a write cursor.
// Bytes [0, Len()) are valid; writes never grow it past Cap().
type Buffer struct {
	data []byte
	n    int
}

// NewBuffer creates a Buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, capacity)}
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.data) - b.n
}

// Bytes returns the written bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.n]
}

// Write appends as much of p as fits and returns ErrBufferFull
// if not all of p was written.
func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.data[b.n:], p)
	b.n += n
	if n < len(p) {
		return n, ErrBufferFull
	}
	return n, nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	if b.n >= len(b.data) {
		return ErrBufferFull
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// Reset empties the buffer, keeping the capacity.
func (b *Buffer) Reset() {
	b.n = 0
}
