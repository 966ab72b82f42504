package framework

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunnerFailureCancelsOthers(t *testing.T) {
	boom := errors.New("serial port gone")
	r := NewRunner().Go(
		NamedRun("waiter", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
		NamedRun("failer", RunFunc(func(context.Context) error {
			return boom
		})),
	)
	err := r.Wait()
	require.ErrorIs(t, err, boom)
	require.Equal(t, boom.Error(), err.Error())
	require.Len(t, r.Runners, 2)
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunnerWith(ctx).Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	cancel()
	require.NoError(t, r.Wait())
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	first, second := errors.New("first"), errors.New("second")
	err := errs.Add(first, nil, second).Aggregate()
	require.ErrorIs(t, err, second)
	require.Equal(t, "Multiple errors:\nfirst\nsecond", err.Error())
}

type blockingReader struct {
	closed chan struct{}
}

func (r *blockingReader) Read([]byte) (int, error) {
	<-r.closed
	return 0, io.EOF
}

func (r *blockingReader) Close() error {
	close(r.closed)
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	src := &blockingReader{closed: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunWithContextCloser(ctx, src, func() error {
		_, err := src.Read(nil)
		return err
	})
	require.Equal(t, context.Canceled, err)

	done := &blockingReader{closed: make(chan struct{})}
	err = RunWithContextCloser(context.Background(), done, func() error { return nil })
	require.NoError(t, err)
	_, ok := <-done.closed
	require.False(t, ok, "closed after fn returns")
}
