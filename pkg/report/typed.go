package report

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

// TypeID masks
const (
	TypeIDMaskKind  uint32 = 0x80000000
	TypeIDMaskGroup uint32 = 0x7fff0000
	TypeIDMaskID    uint32 = 0x0000ffff
)

// TypeIDKindEvent marks reports, all reports are events.
const TypeIDKindEvent uint32 = 0x80000000

// TypeIDGroupBringup is the group of bring-up reports.
const TypeIDGroupBringup uint32 = 0x00010000

// Report type IDs.
const (
	VersionReportTypeID  = TypeIDKindEvent | TypeIDGroupBringup | 0x0001
	BootReportTypeID     = TypeIDKindEvent | TypeIDGroupBringup | 0x0002
	FixReportTypeID      = TypeIDKindEvent | TypeIDGroupBringup | 0x0003
	DeviceIDReportTypeID = TypeIDKindEvent | TypeIDGroupBringup | 0x0004
)

// Report is a message which can be wrapped in Typed.
type Report interface {
	proto.Message
	TypeID() uint32
	GetHeader() *Header
	SetHeader(*Header)
}

// ReportTypes maps type IDs to report constructors.
var ReportTypes = map[uint32]func() Report{
	VersionReportTypeID:  func() Report { return &VersionReport{} },
	BootReportTypeID:     func() Report { return &BootReport{} },
	FixReportTypeID:      func() Report { return &FixReport{} },
	DeviceIDReportTypeID: func() Report { return &DeviceIDReport{} },
}

// ErrUnknownType indicates unknown type id.
type ErrUnknownType struct {
	TypeID uint32
}

// Error implements error.
func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %x", e.TypeID)
}

// TypedFrom wraps a report.
func TypedFrom(r Report) (*Typed, error) {
	data, err := proto.Marshal(r)
	if err != nil {
		return nil, err
	}
	return &Typed{TypeId: r.TypeID(), Message: data}, nil
}

// Decode decodes the wrapped report.
func (m *Typed) Decode() (Report, error) {
	newReport, ok := ReportTypes[m.TypeId]
	if !ok {
		return nil, &ErrUnknownType{TypeID: m.TypeId}
	}
	r := newReport()
	if err := proto.Unmarshal(m.Message, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Encode encodes the Typed to bytes.
func (m *Typed) Encode() ([]byte, error) {
	return proto.Marshal(m)
}

// Kind gets message kind from type ID.
func (m *Typed) Kind() uint32 {
	return m.TypeId & TypeIDMaskKind
}

// IsEvent determines if the message is an event.
func (m *Typed) IsEvent() bool {
	return m.Kind() == TypeIDKindEvent
}

// DecodeTyped decodes bytes into Typed.
func DecodeTyped(data []byte) (*Typed, error) {
	var typed Typed
	if err := proto.Unmarshal(data, &typed); err != nil {
		return nil, err
	}
	return &typed, nil
}

// DecodeReport decodes a packet into the report.
func DecodeReport(data []byte) (Report, error) {
	typed, err := DecodeTyped(data)
	if err != nil {
		return nil, err
	}
	return typed.Decode()
}

// TypeID implements Report.
func (m *VersionReport) TypeID() uint32 { return VersionReportTypeID }

// GetHeader implements Report.
func (m *VersionReport) GetHeader() *Header { return m.Header }

// SetHeader implements Report.
func (m *VersionReport) SetHeader(h *Header) { m.Header = h }

// TypeID implements Report.
func (m *BootReport) TypeID() uint32 { return BootReportTypeID }

// GetHeader implements Report.
func (m *BootReport) GetHeader() *Header { return m.Header }

// SetHeader implements Report.
func (m *BootReport) SetHeader(h *Header) { m.Header = h }

// TypeID implements Report.
func (m *FixReport) TypeID() uint32 { return FixReportTypeID }

// GetHeader implements Report.
func (m *FixReport) GetHeader() *Header { return m.Header }

// SetHeader implements Report.
func (m *FixReport) SetHeader(h *Header) { m.Header = h }

// TypeID implements Report.
func (m *DeviceIDReport) TypeID() uint32 { return DeviceIDReportTypeID }

// GetHeader implements Report.
func (m *DeviceIDReport) GetHeader() *Header { return m.Header }

// SetHeader implements Report.
func (m *DeviceIDReport) SetHeader(h *Header) { m.Header = h }
