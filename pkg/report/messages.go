package report

import "github.com/golang/protobuf/proto"

// Message types mirror report.proto.

// Typed wraps an encoded message with its type ID.
type Typed struct {
	TypeId  uint32 `protobuf:"varint,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Message []byte `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *Typed) Reset()         { *m = Typed{} }
func (m *Typed) String() string { return proto.CompactTextString(m) }
func (*Typed) ProtoMessage()    {}

// Header identifies the origin of a report.
type Header struct {
	BoardId string `protobuf:"bytes,1,opt,name=board_id,json=boardId,proto3" json:"board_id,omitempty"`
	RunId   string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Time    int64  `protobuf:"varint,3,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *Header) Reset()         { *m = Header{} }
func (m *Header) String() string { return proto.CompactTextString(m) }
func (*Header) ProtoMessage()    {}

// VersionReport is the result of a MON-VER probe.
type VersionReport struct {
	Header     *Header  `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Software   string   `protobuf:"bytes,2,opt,name=software,proto3" json:"software,omitempty"`
	Hardware   string   `protobuf:"bytes,3,opt,name=hardware,proto3" json:"hardware,omitempty"`
	Extensions []string `protobuf:"bytes,4,rep,name=extensions,proto3" json:"extensions,omitempty"`
	Raw        []byte   `protobuf:"bytes,5,opt,name=raw,proto3" json:"raw,omitempty"`
	Error      string   `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *VersionReport) Reset()         { *m = VersionReport{} }
func (m *VersionReport) String() string { return proto.CompactTextString(m) }
func (*VersionReport) ProtoMessage()    {}

// BootReport is the result of a boot count increment.
type BootReport struct {
	Header    *Header `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Device    string  `protobuf:"bytes,2,opt,name=device,proto3" json:"device,omitempty"`
	Size      uint32  `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	BootCount uint32  `protobuf:"varint,4,opt,name=boot_count,json=bootCount,proto3" json:"boot_count,omitempty"`
	Error     string  `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *BootReport) Reset()         { *m = BootReport{} }
func (m *BootReport) String() string { return proto.CompactTextString(m) }
func (*BootReport) ProtoMessage()    {}

// FixReport is a GNSS fix.
type FixReport struct {
	Header     *Header `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Time       int64   `protobuf:"varint,2,opt,name=time,proto3" json:"time,omitempty"`
	Latitude   float64 `protobuf:"fixed64,3,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude  float64 `protobuf:"fixed64,4,opt,name=longitude,proto3" json:"longitude,omitempty"`
	Altitude   float64 `protobuf:"fixed64,5,opt,name=altitude,proto3" json:"altitude,omitempty"`
	Satellites uint32  `protobuf:"varint,6,opt,name=satellites,proto3" json:"satellites,omitempty"`
	Quality    string  `protobuf:"bytes,7,opt,name=quality,proto3" json:"quality,omitempty"`
	Valid      bool    `protobuf:"varint,8,opt,name=valid,proto3" json:"valid,omitempty"`
	SpeedKnots float64 `protobuf:"fixed64,9,opt,name=speed_knots,json=speedKnots,proto3" json:"speed_knots,omitempty"`
	Course     float64 `protobuf:"fixed64,10,opt,name=course,proto3" json:"course,omitempty"`
}

func (m *FixReport) Reset()         { *m = FixReport{} }
func (m *FixReport) String() string { return proto.CompactTextString(m) }
func (*FixReport) ProtoMessage()    {}

// DeviceIDReport is the result of a UWB device ID probe.
type DeviceIDReport struct {
	Header   *Header `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Value    uint32  `protobuf:"fixed32,2,opt,name=value,proto3" json:"value,omitempty"`
	RidTag   uint32  `protobuf:"varint,3,opt,name=rid_tag,json=ridTag,proto3" json:"rid_tag,omitempty"`
	Model    uint32  `protobuf:"varint,4,opt,name=model,proto3" json:"model,omitempty"`
	Version  uint32  `protobuf:"varint,5,opt,name=version,proto3" json:"version,omitempty"`
	Revision uint32  `protobuf:"varint,6,opt,name=revision,proto3" json:"revision,omitempty"`
	Error    string  `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *DeviceIDReport) Reset()         { *m = DeviceIDReport{} }
func (m *DeviceIDReport) String() string { return proto.CompactTextString(m) }
func (*DeviceIDReport) ProtoMessage()    {}
