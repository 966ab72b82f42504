package report

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/ubx"
	"github.com/robotalks/bringup/pkg/uwb"
)

type packetLog [][]byte

func (l *packetLog) WritePacket(pkt []byte) error {
	*l = append(*l, pkt)
	return nil
}

func TestPublish(t *testing.T) {
	now := time.Date(2024, time.March, 23, 12, 0, 0, 0, time.UTC)
	fixTime := now.Add(-time.Second)
	testCases := []struct {
		name   string
		report Report
	}{
		{"version", NewVersionReport([]byte{0xB5, 0x62}, &ubx.Version{Software: "ROM CORE 3.01", Hardware: "00080000", Extensions: []string{"PROTVER=18.00"}}, nil)},
		{"version failed", NewVersionReport(nil, nil, ubx.ErrCaptureTimeout)},
		{"boot", NewBootReport("at24@0x50", 256, 41, nil)},
		{"fix", NewFixReport(gnss.Fix{Time: fixTime, Latitude: 48.1173, Longitude: 11.5166, Altitude: 545.4, Satellites: 8, Quality: "1", Valid: true, SpeedKnots: 22.4, Course: 84.4})},
		{"device id", NewDeviceIDReport(uwb.ParseDeviceID(0xDECA0130), nil)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var sent packetLog
			p := NewPublisher(&sent, "proto-3")
			p.Now = func() time.Time { return now }
			require.NoError(t, p.Publish(tc.report))
			require.Len(t, sent, 1)

			typed, err := DecodeTyped(sent[0])
			require.NoError(t, err)
			require.True(t, typed.IsEvent())
			require.Equal(t, tc.report.TypeID(), typed.TypeId)

			decoded, err := typed.Decode()
			require.NoError(t, err)
			require.True(t, proto.Equal(tc.report, decoded), cmp.Diff(tc.report, decoded))
			require.Equal(t, &Header{BoardId: "proto-3", RunId: p.RunID, Time: now.UnixNano()}, decoded.GetHeader())
		})
	}
}

func TestNewReports(t *testing.T) {
	r := NewVersionReport(nil, nil, errors.New("didn't find version packet"))
	require.Equal(t, "didn't find version packet", r.Error)

	fix := NewFixReport(gnss.Fix{Satellites: 3})
	require.Zero(t, fix.Time, "zero time stays unset")

	id := NewDeviceIDReport(uwb.ParseDeviceID(0xDECA0130), nil)
	require.Equal(t, uint32(0xDECA), id.RidTag)
	require.Equal(t, uint32(0xDECA0130), id.Value)
}

func TestDecodeUnknownType(t *testing.T) {
	typed := &Typed{TypeId: TypeIDKindEvent | 0x7f}
	_, err := typed.Decode()
	var uerr *ErrUnknownType
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, typed.TypeId, uerr.TypeID)
}
