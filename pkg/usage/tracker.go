// Package usage reports per-tool success/failure counters to the backend.
// Delivery is best effort: events are queued without blocking the tool call,
// drained by one background goroutine, and dropped when the queue is full.
package usage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/stoewer/go-strcase"

	"github.com/stackbase-dev/stackbase-mcp/internal/metrics"
	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

const (
	defaultQueueSize   = 64
	defaultPostTimeout = 5 * time.Second
)

// Poster is the slice of the backend client the tracker needs.
type Poster interface {
	Post(ctx context.Context, event api.UsageEvent) error
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithQueueSize overrides the event queue capacity.
func WithQueueSize(n int) TrackerOption {
	return func(t *Tracker) {
		t.queueSize = n
	}
}

// WithPostTimeout overrides the per-event delivery timeout.
func WithPostTimeout(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		t.postTimeout = d
	}
}

// Tracker queues usage events and delivers them in the background.
type Tracker struct {
	poster      Poster
	log         logr.Logger
	queueSize   int
	postTimeout time.Duration

	mu     sync.Mutex
	closed bool
	events chan api.UsageEvent
	done   chan struct{}
}

// NewTracker creates a tracker and starts its drain goroutine.
func NewTracker(poster Poster, log logr.Logger, options ...TrackerOption) *Tracker {
	t := &Tracker{
		poster:      poster,
		log:         log,
		queueSize:   defaultQueueSize,
		postTimeout: defaultPostTimeout,
	}
	for _, option := range options {
		option(t)
	}

	t.events = make(chan api.UsageEvent, t.queueSize)
	t.done = make(chan struct{})
	go t.drain()

	return t
}

// Track enqueues one event. It never blocks and never panics: events arriving
// after Close, or with a full queue, are dropped and counted. Tool calls can
// still be in flight while the server shuts down.
func (t *Tracker) Track(toolName string, success bool) {
	event := api.UsageEvent{
		ID:        uuid.NewString(),
		ToolName:  toolName,
		Success:   success,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	metrics.ToolCalls.WithLabelValues(strcase.SnakeCase(toolName), strconv.FormatBool(success)).Inc()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		metrics.UsageEventsDropped.Inc()
		t.log.V(1).Info("usage tracker closed, dropping event", "tool", toolName)
		return
	}

	select {
	case t.events <- event:
	default:
		metrics.UsageEventsDropped.Inc()
		t.log.V(1).Info("usage queue full, dropping event", "tool", toolName)
	}
}

// Close stops accepting events and waits for the queue to drain or the
// context to expire. Safe to call more than once.
func (t *Tracker) Close(ctx context.Context) error {
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.events)
	}
	t.mu.Unlock()

	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Tracker) drain() {
	defer close(t.done)
	for event := range t.events {
		ctx, cancel := context.WithTimeout(context.Background(), t.postTimeout)
		if err := t.poster.Post(ctx, event); err != nil {
			// Telemetry must never surface into tool results.
			t.log.V(1).Info("usage event delivery failed", "tool", event.ToolName, "error", err.Error())
		}
		cancel()
	}
}
