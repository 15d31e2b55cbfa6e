package usage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

type recordingPoster struct {
	mu      sync.Mutex
	events  []api.UsageEvent
	err     error
	release chan struct{}
}

func (p *recordingPoster) Post(ctx context.Context, event api.UsageEvent) error {
	if p.release != nil {
		<-p.release
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPoster) recorded() []api.UsageEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]api.UsageEvent(nil), p.events...)
}

func TestTrackerDeliversEvents(t *testing.T) {
	poster := &recordingPoster{}
	tracker := NewTracker(poster, logr.Discard())

	tracker.Track("run-raw-sql", true)
	tracker.Track("create-bucket", false)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, tracker.Close(ctx))

	events := poster.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, "run-raw-sql", events[0].ToolName)
	assert.True(t, events[0].Success)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEmpty(t, events[0].Timestamp)
	assert.Equal(t, "create-bucket", events[1].ToolName)
	assert.False(t, events[1].Success)
}

func TestTrackerNeverBlocksWhenQueueFull(t *testing.T) {
	release := make(chan struct{})
	poster := &recordingPoster{release: release}
	tracker := NewTracker(poster, logr.Discard(), WithQueueSize(1))

	done := make(chan struct{})
	go func() {
		defer close(done)
		// The drain goroutine is parked inside Post; later events must be
		// dropped rather than block the caller.
		for i := 0; i < 10; i++ {
			tracker.Track("run-raw-sql", true)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Track blocked with a full queue")
	}

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, tracker.Close(ctx))
}

func TestTrackerSwallowsDeliveryFailures(t *testing.T) {
	poster := &recordingPoster{err: errors.New("usage endpoint down")}
	tracker := NewTracker(poster, logr.Discard())

	tracker.Track("get-anon-key", true)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, tracker.Close(ctx))
	assert.Len(t, poster.recorded(), 1)
}

func TestTrackerTrackAfterCloseDropsEvent(t *testing.T) {
	poster := &recordingPoster{}
	tracker := NewTracker(poster, logr.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, tracker.Close(ctx))

	// A tool call can still be in flight when the server shuts down; its
	// tracking must be dropped, not crash the process.
	require.NotPanics(t, func() { tracker.Track("run-raw-sql", true) })
	assert.Empty(t, poster.recorded())

	require.NoError(t, tracker.Close(ctx))
}

func TestTrackerCloseHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	poster := &recordingPoster{release: release}
	tracker := NewTracker(poster, logr.Discard())

	tracker.Track("run-raw-sql", true)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, tracker.Close(ctx), context.DeadlineExceeded)
}
