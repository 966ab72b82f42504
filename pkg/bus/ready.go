package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
)

// ErrNotReady indicates the device didn't become ready.
var ErrNotReady = errors.New("device not ready")

// DefaultPollInterval is the delay between readiness probes.
const DefaultPollInterval = 5 * time.Millisecond

// WaitReady calls probe until it succeeds, sleeping interval in between.
// It gives up with ErrNotReady when ctx is done.
func WaitReady(ctx context.Context, interval time.Duration, probe func() error) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	for n := 1; ; n++ {
		err := probe()
		if err == nil {
			return nil
		}
		glog.V(3).Infof("probe %d: %v", n, err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrNotReady, err)
		case <-time.After(interval):
		}
	}
}
