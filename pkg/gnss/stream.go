package gnss

import (
	"bufio"
	"context"
	"io"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
	"github.com/golang/glog"

	"github.com/robotalks/bringup/pkg/framework"
)

// Stream reads NMEA sentences and delivers fixes to Handler.
type Stream struct {
	Source  io.ReadCloser
	Handler FixHandler

	name      string
	sentences int
	malformed int
}

// NewStream creates a Stream.
func NewStream(name string, source io.ReadCloser, handler FixHandler) *Stream {
	return &Stream{name: name, Source: source, Handler: handler}
}

// Name implements framework.Named.
func (s *Stream) Name() string {
	return s.name
}

// Sentences returns the number of sentences parsed.
func (s *Stream) Sentences() int {
	return s.sentences
}

// Malformed returns the number of lines which failed to parse.
func (s *Stream) Malformed() int {
	return s.malformed
}

// Run implements framework.Runnable. Source is closed when Run returns.
func (s *Stream) Run(ctx context.Context) error {
	return framework.RunWithContextCloser(ctx, s.Source, s.read)
}

func (s *Stream) read() error {
	var tracker Tracker
	scanner := bufio.NewScanner(s.Source)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sentence, err := nmea.Parse(line)
		if err != nil {
			s.malformed++
			glog.V(2).Infof("%s: %v: %q", s.name, err, line)
			continue
		}
		s.sentences++
		if fix, ok := tracker.Update(sentence); ok && s.Handler != nil {
			s.Handler.HandleFix(fix)
		}
	}
	return scanner.Err()
}
