package ubx

import "bytes"

const (
	verSoftwareLen  = 30
	verHardwareLen  = 10
	verExtensionLen = 30
)

// Version is the decoded MON-VER payload.
type Version struct {
	Software   string   `json:"software"`
	Hardware   string   `json:"hardware"`
	Extensions []string `json:"extensions,omitempty"`
}

// DecodeVersion decodes a MON-VER packet.
func DecodeVersion(p *Packet) (*Version, error) {
	if p.Class != ClassMON || p.ID != IDMONVER {
		return nil, ErrUnexpectedMessage
	}
	fixed := verSoftwareLen + verHardwareLen
	if len(p.Payload) < fixed || (len(p.Payload)-fixed)%verExtensionLen != 0 {
		return nil, ErrShortPacket
	}
	v := &Version{
		Software: cString(p.Payload[:verSoftwareLen]),
		Hardware: cString(p.Payload[verSoftwareLen:fixed]),
	}
	for off := fixed; off < len(p.Payload); off += verExtensionLen {
		v.Extensions = append(v.Extensions, cString(p.Payload[off:off+verExtensionLen]))
	}
	return v, nil
}

func cString(b []byte) string {
	if pos := bytes.IndexByte(b, 0); pos >= 0 {
		return string(b[:pos])
	}
	return string(b)
}
