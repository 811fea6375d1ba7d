package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docassist/docassist-be/service"
)

func TestRunWithTimeout_ReturnsValueBeforeDeadline(t *testing.T) {
	value, err := service.RunWithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", value)
}

func TestRunWithTimeout_PropagatesWorkError(t *testing.T) {
	boom := errors.New("backend exploded")

	_, err := service.RunWithTimeout(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestRunWithTimeout_DeadlineWins(t *testing.T) {
	started := time.Now()
	_, err := service.RunWithTimeout(context.Background(), 20*time.Millisecond, func(ctx context.Context) (string, error) {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
		}
		return "too late", nil
	})

	assert.ErrorIs(t, err, service.ErrChunkTimeout)
	assert.Less(t, time.Since(started), time.Second)
}

func TestRunWithTimeout_CancelsWorkContextOnTimeout(t *testing.T) {
	canceled := make(chan struct{})

	_, err := service.RunWithTimeout(context.Background(), 20*time.Millisecond, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		close(canceled)
		return "", ctx.Err()
	})
	require.ErrorIs(t, err, service.ErrChunkTimeout)

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("work context was never canceled after timeout")
	}
}

func TestRunWithTimeout_RespectsParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.RunWithTimeout(ctx, time.Second, func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithTimeout_RepeatedCallsLeakNothing(t *testing.T) {
	for i := 0; i < 50; i++ {
		_, err := service.RunWithTimeout(context.Background(), time.Millisecond, func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})
		assert.ErrorIs(t, err, service.ErrChunkTimeout)
	}

	// The runner is still healthy after a burst of timeouts.
	value, err := service.RunWithTimeout(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}
