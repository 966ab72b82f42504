package eeprom

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDevice(t *testing.T, dev Device) {
	buf := make([]byte, 4)
	n, err := dev.ReadAt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf)

	n, err = dev.WriteAt([]byte{1, 2, 3}, 2)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = dev.ReadAt(buf, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 1, 2, 3}, buf)

	_, err = dev.ReadAt(buf, int64(dev.Size()-3))
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = dev.WriteAt(buf, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMem(t *testing.T) {
	testDevice(t, NewMem(64))
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")
	f, err := OpenFile(path, 64)
	require.NoError(t, err)
	testDevice(t, f)
	require.Equal(t, path, f.String())
	require.NoError(t, f.Close())

	f, err = OpenFile(path, 128)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, 128, f.Size())
	buf := make([]byte, 4)
	_, err = f.ReadAt(buf, 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 1, 2, 3}, buf, "content should survive reopen")
	_, err = f.ReadAt(buf, 124)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf)
}

type i2cTx struct {
	addr uint16
	w    []byte
	r    int
}

// fakeAT24 emulates the memory array behind the I2C bus.
type fakeAT24 struct {
	mem  []byte
	wide bool
	txs  []i2cTx
}

func (f *fakeAT24) Tx(addr uint16, w, r []byte) error {
	f.txs = append(f.txs, i2cTx{addr: addr, w: append([]byte(nil), w...), r: len(r)})
	var off int
	if f.wide {
		off, w = int(w[0])<<8|int(w[1]), w[2:]
	} else {
		off, w = int(addr&7)<<8|int(w[0]), w[1:]
	}
	copy(f.mem[off:], w)
	copy(r, f.mem[off:])
	return nil
}

func TestAT24PageWrites(t *testing.T) {
	bus := &fakeAT24{mem: bytes.Repeat([]byte{0xff}, 4096), wide: true}
	dev := NewAT24(bus, 0x50, 4096, 32)
	dev.WriteDelay = 0

	data := bytes.Repeat([]byte{0xaa}, 40)
	n, err := dev.WriteAt(data, 30)
	require.NoError(t, err)
	require.Equal(t, 40, n)
	require.Len(t, bus.txs, 3)
	require.Equal(t, []byte{0x00, 30}, bus.txs[0].w[:2])
	require.Len(t, bus.txs[0].w, 2+2)
	require.Equal(t, []byte{0x00, 32}, bus.txs[1].w[:2])
	require.Len(t, bus.txs[1].w, 2+32)
	require.Equal(t, []byte{0x00, 64}, bus.txs[2].w[:2])
	require.Len(t, bus.txs[2].w, 2+6)

	out := make([]byte, 40)
	_, err = dev.ReadAt(out, 30)
	require.NoError(t, err)
	require.Equal(t, data, out)
	require.Equal(t, "at24@0x50", dev.String())
}

func TestAT24BlockAddressing(t *testing.T) {
	bus := &fakeAT24{mem: bytes.Repeat([]byte{0xff}, 2048)}
	dev := NewAT24(bus, 0x50, 2048, 16)
	dev.WriteDelay = 0

	_, err := dev.WriteAt([]byte{1, 2, 3, 4}, 0x2fe)
	require.NoError(t, err)
	require.Equal(t, uint16(0x52), bus.txs[0].addr)
	require.Equal(t, []byte{0xfe, 1, 2}, bus.txs[0].w)
	require.Equal(t, uint16(0x53), bus.txs[1].addr)
	require.Equal(t, []byte{0x00, 3, 4}, bus.txs[1].w)

	bus.txs = nil
	out := make([]byte, 4)
	_, err = dev.ReadAt(out, 0x2fe)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, out)
	require.Len(t, bus.txs, 2, "read should be split at the block boundary")
}
