package probe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/bringup/pkg/bootcount"
	"github.com/robotalks/bringup/pkg/eeprom"
	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/ubx"
)

func versionPayload() []byte {
	payload := make([]byte, 70)
	copy(payload, "ROM CORE 3.01 (107888)")
	copy(payload[30:], "00080000")
	copy(payload[40:], "PROTVER=18.00")
	return payload
}

// replay answers the poll with pkt after a few idle transfers.
func replay(pkt []byte, idle int) ubx.TransceiveFunc {
	stream := append(bytes.Repeat([]byte{0xff}, idle), pkt...)
	return func(w, r []byte) error {
		for i := range r {
			r[i] = 0xff
		}
		stream = stream[copy(r, stream):]
		return nil
	}
}

func TestCaptureVersion(t *testing.T) {
	pkt := (&ubx.Packet{Class: ubx.ClassMON, ID: ubx.IDMONVER, Payload: versionPayload()}).Bytes()
	res, err := CaptureVersion(context.Background(), ubx.NewReassembler(replay(pkt, 300)))
	require.NoError(t, err)
	require.Equal(t, pkt, res.Raw)
	require.Equal(t, &ubx.Version{
		Software:   "ROM CORE 3.01 (107888)",
		Hardware:   "00080000",
		Extensions: []string{"PROTVER=18.00"},
	}, res.Version)
}

func TestCaptureVersionErrors(t *testing.T) {
	_, err := CaptureVersion(context.Background(), ubx.NewReassembler(replay(nil, 0)))
	require.ErrorIs(t, err, ubx.ErrCaptureTimeout)

	pkt := (&ubx.Packet{Class: ubx.ClassMON, ID: ubx.IDMONVER, Payload: versionPayload()}).Bytes()
	pkt[len(pkt)-1]++
	res, err := CaptureVersion(context.Background(), ubx.NewReassembler(replay(pkt, 0)))
	require.ErrorIs(t, err, ubx.ErrChecksum)
	require.Equal(t, pkt, res.Raw)
	require.Nil(t, res.Version)

	other := (&ubx.Packet{Class: ubx.ClassNAV, ID: ubx.IDNAVPVT}).Bytes()
	_, err = CaptureVersion(context.Background(), ubx.NewReassembler(replay(other, 0)))
	require.ErrorIs(t, err, ubx.ErrUnexpectedMessage)
}

func TestIncrementBoot(t *testing.T) {
	dev := eeprom.NewMem(64)
	for i := uint32(0); i < 2; i++ {
		res, err := IncrementBoot(dev, 0)
		require.NoError(t, err)
		require.Equal(t, &BootResult{Device: "mem", Size: 64, Booted: i}, res)
	}
	_, err := IncrementBoot(eeprom.NewMem(4), 0)
	require.ErrorIs(t, err, eeprom.ErrOutOfRange)
	var verr *bootcount.VerifyError
	require.False(t, errors.As(err, &verr))
}

const nmeaLog = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230324,003.1,W*61\r\n" +
	"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n" +
	"$GPRMC,123520,A,4807.040,N,01131.000,E,022.4,084.4,230324,003.1,W*64\r\n" +
	"$GPGGA,123520,4807.040,N,01131.000,E,1,09,0.9,546.0,M,46.9,M,,*44\r\n"

// endless blocks after the log until closed.
type endless struct {
	io.Reader
	closed chan struct{}
}

func (e *endless) Read(p []byte) (int, error) {
	n, err := e.Reader.Read(p)
	if err == io.EOF {
		<-e.closed
	}
	return n, err
}

func (e *endless) Close() error {
	close(e.closed)
	return nil
}

func TestStreamFixes(t *testing.T) {
	var fixes []gnss.Fix
	src := &endless{Reader: strings.NewReader(nmeaLog), closed: make(chan struct{})}
	err := StreamFixes(context.Background(), src, 1, gnss.FixHandlerFunc(func(fix gnss.Fix) {
		fixes = append(fixes, fix)
	}))
	require.NoError(t, err)
	require.Len(t, fixes, 1)
	require.Equal(t, 8, fixes[0].Satellites)

	fixes = nil
	err = StreamFixes(context.Background(), io.NopCloser(strings.NewReader(nmeaLog)), 0, gnss.FixHandlerFunc(func(fix gnss.Fix) {
		fixes = append(fixes, fix)
	}))
	require.NoError(t, err)
	require.Len(t, fixes, 2)
}
