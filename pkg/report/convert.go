package report

import (
	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/ubx"
	"github.com/robotalks/bringup/pkg/uwb"
)

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// NewVersionReport creates a VersionReport from a capture. v may be nil
// when decoding failed.
func NewVersionReport(raw []byte, v *ubx.Version, err error) *VersionReport {
	r := &VersionReport{Raw: raw, Error: errString(err)}
	if v != nil {
		r.Software, r.Hardware, r.Extensions = v.Software, v.Hardware, v.Extensions
	}
	return r
}

// NewBootReport creates a BootReport.
func NewBootReport(device string, size int, booted uint32, err error) *BootReport {
	return &BootReport{
		Device:    device,
		Size:      uint32(size),
		BootCount: booted,
		Error:     errString(err),
	}
}

// NewFixReport creates a FixReport.
func NewFixReport(fix gnss.Fix) *FixReport {
	r := &FixReport{
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
		Altitude:   fix.Altitude,
		Satellites: uint32(fix.Satellites),
		Quality:    fix.Quality,
		Valid:      fix.Valid,
		SpeedKnots: fix.SpeedKnots,
		Course:     fix.Course,
	}
	if !fix.Time.IsZero() {
		r.Time = fix.Time.UnixNano()
	}
	return r
}

// NewDeviceIDReport creates a DeviceIDReport.
func NewDeviceIDReport(id uwb.DeviceID, err error) *DeviceIDReport {
	return &DeviceIDReport{
		Value:    id.Uint32(),
		RidTag:   uint32(id.RIDTag),
		Model:    uint32(id.Model),
		Version:  uint32(id.Version),
		Revision: uint32(id.Revision),
		Error:    errString(err),
	}
}
