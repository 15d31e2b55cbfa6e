package backendver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// DefaultTTL is how long one health probe result stays valid.
const DefaultTTL = 5 * time.Minute

// ErrBackendUnreachable marks a version resolution that failed because the
// health probe could not be completed.
var ErrBackendUnreachable = errors.New("backend unreachable")

// HealthProber is the slice of the backend client the resolver needs.
type HealthProber interface {
	Get(ctx context.Context) (*api.HealthResponse, error)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTTL overrides the cache TTL.
func WithTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

// WithClock injects a clock, used by tests.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.now = now
	}
}

// Resolver fetches the backend version through the health endpoint and
// memoizes it in a single slot. Concurrent refreshes race benignly:
// last write wins, and both writers got the answer from the same backend.
type Resolver struct {
	health HealthProber
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	version   string
	fetchedAt time.Time
}

// NewResolver creates a resolver over the given health prober.
func NewResolver(health HealthProber, options ...ResolverOption) *Resolver {
	r := &Resolver{
		health: health,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Resolve returns the backend version, from cache when fresh. A probe failure
// or an empty version field is reported as ErrBackendUnreachable.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.version != "" && r.now().Sub(r.fetchedAt) < r.ttl {
		v := r.version
		r.mu.Unlock()
		return v, nil
	}
	r.mu.Unlock()

	health, err := r.health.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	if health.Version == "" {
		return "", fmt.Errorf("%w: health response carries no version", ErrBackendUnreachable)
	}

	r.mu.Lock()
	r.version = health.Version
	r.fetchedAt = r.now()
	r.mu.Unlock()

	return health.Version, nil
}
