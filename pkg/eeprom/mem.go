package eeprom

// Mem is an EEPROM emulated in memory.
type Mem struct {
	data []byte
}

// NewMem creates an erased Mem of size bytes.
func NewMem(size int) *Mem {
	m := &Mem{data: make([]byte, size)}
	for i := range m.data {
		m.data[i] = erased
	}
	return m
}

// Size implements Device.
func (m *Mem) Size() int {
	return len(m.data)
}

// ReadAt implements io.ReaderAt.
func (m *Mem) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(off, len(p), len(m.data)); err != nil {
		return 0, err
	}
	return copy(p, m.data[off:]), nil
}

// WriteAt implements io.WriterAt.
func (m *Mem) WriteAt(p []byte, off int64) (int, error) {
	if err := checkRange(off, len(p), len(m.data)); err != nil {
		return 0, err
	}
	return copy(m.data[off:], p), nil
}

// String implements fmt.Stringer.
func (m *Mem) String() string {
	return "mem"
}
