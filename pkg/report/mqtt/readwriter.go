package mqtt

import (
	"context"
	"io"
	"strings"
)

// ReportTopic is the topic suffix of reports, the board ID comes before it.
const ReportTopic = "report"

// TopicFor returns the report topic of the board.
func TopicFor(boardID string) string {
	return boardID + "/" + ReportTopic
}

// BoardFromTopic extracts the board ID from a report topic.
func BoardFromTopic(topic string) string {
	return strings.TrimSuffix(topic, "/"+ReportTopic)
}

// Writer publishes packets to the report topic of a board.
type Writer struct {
	Queue *Queue
	Topic string
}

// Dial connects to the broker and creates a Writer for the board.
func Dial(brokerURL, boardID string) (*Writer, error) {
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if err := q.Connect(); err != nil {
		return nil, err
	}
	return &Writer{Queue: q, Topic: TopicFor(boardID)}, nil
}

// WritePacket implements report.PacketWriter.
func (w *Writer) WritePacket(pkt []byte) error {
	return w.Queue.Pub(w.Topic, pkt)
}

// Close implements io.Closer.
func (w *Writer) Close() error {
	return w.Queue.Close()
}

// Packet is a received packet with the board it came from.
type Packet struct {
	BoardID string
	Payload []byte
}

// Reader receives report packets of all boards.
type Reader struct {
	Queue *Queue

	packetCh chan Packet
}

// NewReader creates a Reader.
func NewReader(q *Queue) *Reader {
	return &Reader{Queue: q, packetCh: make(chan Packet, 16)}
}

// ReadPacket implements report.PacketReader.
func (r *Reader) ReadPacket() ([]byte, error) {
	pkt, err := r.Read()
	return pkt.Payload, err
}

// Read receives the next packet.
func (r *Reader) Read() (Packet, error) {
	pkt, ok := <-r.packetCh
	if !ok {
		return Packet{}, io.EOF
	}
	return pkt, nil
}

// Run implements framework.Runnable.
func (r *Reader) Run(ctx context.Context) error {
	defer close(r.packetCh)
	sub, err := r.Queue.Sub(TopicFor("+"), r.handleMsg)
	if err != nil {
		return err
	}
	defer sub.Close()
	<-ctx.Done()
	return ctx.Err()
}

func (r *Reader) handleMsg(topic string, payload []byte) {
	r.packetCh <- Packet{BoardID: BoardFromTopic(topic), Payload: payload}
}
