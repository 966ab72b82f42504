// Package sink opens report destinations by URL.
package sink

import (
	"fmt"
	"log"
	"net/url"

	"github.com/robotalks/bringup/pkg/report"
	"github.com/robotalks/bringup/pkg/report/mqtt"
	"github.com/robotalks/bringup/pkg/report/stream"
	"github.com/robotalks/bringup/pkg/report/websocket"
)

// Open opens the sink for the board. Supported URLs:
//
//	mqtt://host:port/prefix    publishes to <prefix><board-id>/report
//	ws://host/path             sends websocket binary messages
//	file:///path, -            appends length-prefixed packets
func Open(sinkURL, boardID string) (report.PacketWriteCloser, error) {
	if sinkURL == "-" {
		return stream.OpenFile(sinkURL)
	}
	u, err := url.Parse(sinkURL)
	if err != nil {
		return nil, fmt.Errorf("invalid report URL: %v", err)
	}
	switch u.Scheme {
	case "mqtt", "mqtts":
		return mqtt.Dial(sinkURL, boardID)
	case "ws", "wss":
		return websocket.Dial(sinkURL)
	case "file":
		if u.Path == "" {
			return nil, fmt.Errorf("missing path in report URL %q", sinkURL)
		}
		return stream.OpenFile(u.Path)
	default:
		return nil, fmt.Errorf("unknown report URL scheme: %q", u.Scheme)
	}
}

// MustOpen opens the sink and fails on error.
func MustOpen(sinkURL, boardID string) report.PacketWriteCloser {
	w, err := Open(sinkURL, boardID)
	if err != nil {
		log.Fatalln(err)
	}
	return w
}

// Discard drops all packets.
type Discard struct{}

// WritePacket implements report.PacketWriter.
func (Discard) WritePacket([]byte) error { return nil }

// Close implements io.Closer.
func (Discard) Close() error { return nil }

// OpenPublisher creates a Publisher on the sink, or one discarding reports
// when sinkURL is empty.
func OpenPublisher(sinkURL, boardID string) (*report.Publisher, report.PacketWriteCloser, error) {
	var w report.PacketWriteCloser = Discard{}
	if sinkURL != "" {
		var err error
		if w, err = Open(sinkURL, boardID); err != nil {
			return nil, nil, err
		}
	}
	return report.NewPublisher(w, boardID), w, nil
}
