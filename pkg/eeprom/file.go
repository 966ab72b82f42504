package eeprom

import (
	"fmt"
	"io"
	"os"
)

// File is an EEPROM emulated by a regular file, so the content survives
// restarts of the program.
type File struct {
	f    *os.File
	size int
}

// OpenFile opens or creates the backing file. A new or shorter file is
// extended to size bytes with erased cells.
func OpenFile(path string, size int) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if cur := info.Size(); cur < int64(size) {
		blank := make([]byte, int64(size)-cur)
		for i := range blank {
			blank[i] = erased
		}
		if _, err := f.WriteAt(blank, cur); err != nil {
			f.Close()
			return nil, fmt.Errorf("initialize %s: %w", path, err)
		}
	}
	return &File{f: f, size: size}, nil
}

// Size implements Device.
func (e *File) Size() int {
	return e.size
}

// ReadAt implements io.ReaderAt.
func (e *File) ReadAt(p []byte, off int64) (int, error) {
	if err := checkRange(off, len(p), e.size); err != nil {
		return 0, err
	}
	n, err := e.f.ReadAt(p, off)
	if err == io.EOF && n == len(p) {
		err = nil
	}
	return n, err
}

// WriteAt implements io.WriterAt.
func (e *File) WriteAt(p []byte, off int64) (int, error) {
	if err := checkRange(off, len(p), e.size); err != nil {
		return 0, err
	}
	n, err := e.f.WriteAt(p, off)
	if err != nil {
		return n, err
	}
	return n, e.f.Sync()
}

// String implements fmt.Stringer.
func (e *File) String() string {
	return e.f.Name()
}

// Close implements io.Closer.
func (e *File) Close() error {
	return e.f.Close()
}
