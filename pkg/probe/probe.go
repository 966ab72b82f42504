// Package probe runs the bring-up checks against the configured board.
package probe

import (
	"context"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/board"
	"github.com/robotalks/bringup/pkg/bootcount"
	"github.com/robotalks/bringup/pkg/eeprom"
	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/ubx"
	"github.com/robotalks/bringup/pkg/uwb"
)

// VersionResult is a captured MON-VER response.
type VersionResult struct {
	Raw     []byte       `json:"raw"`
	Version *ubx.Version `json:"version,omitempty"`
}

// CaptureVersion polls MON-VER with r and decodes the response. Raw is
// set whenever a packet was captured, even if it doesn't decode.
func CaptureVersion(ctx context.Context, r *ubx.Reassembler) (*VersionResult, error) {
	raw, err := r.WithCommand(ubx.PollVersion).Capture(ctx)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("packet: % x", raw)
	res := &VersionResult{Raw: raw}
	pkt, err := ubx.Decode(raw)
	if err != nil {
		return res, err
	}
	if res.Version, err = ubx.DecodeVersion(pkt); err != nil {
		return res, err
	}
	return res, nil
}

// Version opens the receiver and captures its version.
func Version(ctx context.Context, conf board.GNSSConfig) (*VersionResult, error) {
	dev, err := conf.OpenSPI(ctx)
	if err != nil {
		return nil, err
	}
	defer dev.Close()
	return CaptureVersion(ctx, conf.Reassembler(dev))
}

// BootResult is the outcome of a boot count increment.
type BootResult struct {
	Device string `json:"device"`
	Size   int    `json:"size"`
	Booted uint32 `json:"booted"`
}

// IncrementBoot increments the boot counter on dev.
func IncrementBoot(dev eeprom.Device, off int64) (*BootResult, error) {
	res := &BootResult{Device: fmt.Sprint(dev), Size: dev.Size()}
	booted, err := (&bootcount.Counter{Device: dev, Offset: off}).Increment()
	res.Booted = booted
	return res, err
}

// Boot opens the EEPROM and increments the boot counter.
func Boot(conf board.EEPROMConfig) (*BootResult, error) {
	dev, closer, err := conf.Open()
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return IncrementBoot(dev, conf.Offset)
}

// DeviceID opens the UWB transceiver and reads its ID.
func DeviceID(conf board.UWBConfig) (uwb.DeviceID, error) {
	dev, err := conf.SPI.Open()
	if err != nil {
		return uwb.DeviceID{}, err
	}
	defer dev.Close()
	return uwb.ReadDeviceID(dev)
}

// StreamFixes delivers fixes from src to h until n fixes were delivered
// (n <= 0 for no limit), ctx is done or src ends.
func StreamFixes(ctx context.Context, src io.ReadCloser, n int, h gnss.FixHandler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var count int
	stream := gnss.NewStream("gnss", src, gnss.FixHandlerFunc(func(fix gnss.Fix) {
		if n > 0 && count >= n {
			return
		}
		count++
		h.HandleFix(fix)
		if n > 0 && count >= n {
			cancel()
		}
	}))
	err := stream.Run(ctx)
	if n > 0 && count >= n {
		return nil
	}
	return err
}

// Fixes opens the NMEA UART and streams fixes.
func Fixes(ctx context.Context, conf board.GNSSConfig, n int, h gnss.FixHandler) error {
	port, err := conf.OpenSerial()
	if err != nil {
		return err
	}
	return StreamFixes(ctx, port, n, h)
}
