package report

import (
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Publisher stamps reports with the origin and writes them.
type Publisher struct {
	Writer  PacketWriter
	BoardID string
	RunID   string
	Now     func() time.Time
}

// NewPublisher creates a Publisher with a new run ID.
func NewPublisher(w PacketWriter, boardID string) *Publisher {
	return &Publisher{
		Writer:  w,
		BoardID: boardID,
		RunID:   uuid.New().String(),
		Now:     time.Now,
	}
}

// Publish stamps and writes r.
func (p *Publisher) Publish(r Report) error {
	r.SetHeader(&Header{
		BoardId: p.BoardID,
		RunId:   p.RunID,
		Time:    p.Now().UnixNano(),
	})
	typed, err := TypedFrom(r)
	if err != nil {
		return err
	}
	data, err := typed.Encode()
	if err != nil {
		return err
	}
	glog.V(2).Infof("PUB %08x %d bytes", typed.TypeId, len(data))
	return p.Writer.WritePacket(data)
}
