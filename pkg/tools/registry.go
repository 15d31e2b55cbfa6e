// Package tools declares the MCP tool surface and registers it against a
// resolved backend version.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/stackbase-dev/stackbase-mcp/pkg/backendver"
	"github.com/stackbase-dev/stackbase-mcp/pkg/client"
	"github.com/stackbase-dev/stackbase-mcp/pkg/usage"
)

var (
	tracer = otel.Tracer("stackbase-mcp")
	meter  = otel.Meter("stackbase-mcp")

	toolCallCounter  metric.Int64Counter
	toolCallDuration metric.Float64Histogram
)

func init() {
	var err error
	toolCallCounter, err = meter.Int64Counter(
		"tool_calls_total",
		metric.WithDescription("Total number of tool invocations"),
	)
	if err != nil {
		toolCallCounter = nil
	}
	toolCallDuration, err = meter.Float64Histogram(
		"tool_call_duration_seconds",
		metric.WithDescription("Duration of tool invocations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		toolCallDuration = nil
	}
}

// Config selects the backend and default credentials for the tool surface.
type Config struct {
	APIKey     string
	APIBaseURL string
}

// Summary reports what RegisterAll ended up exposing.
type Summary struct {
	ToolCount      int
	BackendVersion string
}

// toolDef pairs a tool declaration with its handler.
type toolDef struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// Registry assembles the static tool set, gates it on the backend version and
// registers the survivors with an MCP server.
type Registry struct {
	cfg      Config
	log      logr.Logger
	clients  *client.ClientSet
	resolver *backendver.Resolver
	tracker  *usage.Tracker
	seen     map[string]bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClients replaces the default client set, used by tests.
func WithClients(clients *client.ClientSet) RegistryOption {
	return func(r *Registry) {
		r.clients = clients
	}
}

// WithResolver replaces the default version resolver, used by tests.
func WithResolver(resolver *backendver.Resolver) RegistryOption {
	return func(r *Registry) {
		r.resolver = resolver
	}
}

// WithTracker attaches a usage tracker. Without one, tracking is skipped.
func WithTracker(tracker *usage.Tracker) RegistryOption {
	return func(r *Registry) {
		r.tracker = tracker
	}
}

// NewRegistry creates a registry for the configured backend.
func NewRegistry(cfg Config, log logr.Logger, options ...RegistryOption) *Registry {
	r := &Registry{
		cfg:  cfg,
		log:  log,
		seen: make(map[string]bool),
	}
	for _, option := range options {
		option(r)
	}
	if r.clients == nil {
		r.clients = client.New(cfg.APIBaseURL, client.WithAPIKey(cfg.APIKey))
	}
	if r.resolver == nil {
		r.resolver = backendver.NewResolver(r.clients.Health)
	}
	return r
}

// RegisterAll resolves the backend version once, then walks the static tool
// set: version-gated tools outside their supported range are skipped with a
// diagnostic log line and stay invisible to the client. Duplicate tool names
// are a programming error and abort registration.
func (r *Registry) RegisterAll(ctx context.Context, s *server.MCPServer) (*Summary, error) {
	version, verr := r.resolver.Resolve(ctx)
	if verr != nil {
		r.log.Info("could not resolve backend version, version-gated tools will be skipped",
			"error", verr.Error())
	}

	var errs *multierror.Error
	summary := &Summary{BackendVersion: version}

	for _, def := range r.toolDefs() {
		name := def.tool.Name
		if r.seen[name] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate tool name %q", name))
			continue
		}
		r.seen[name] = true

		if req, gated := versionRequirements[name]; gated {
			if verr != nil {
				r.log.Info("skipping tool, backend version unknown", "tool", name)
				continue
			}
			if !req.SatisfiedBy(version) {
				r.log.Info("skipping tool, backend version out of range",
					"tool", name,
					"backend_version", version,
					"min_version", req.MinVersion,
					"max_version", req.MaxVersion)
				continue
			}
		}

		s.AddTool(def.tool, r.wrap(name, version, def.handler))
		summary.ToolCount++
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return summary, nil
}

// wrap decorates a handler with tracing, usage tracking and the legacy
// context shim. The wrapped handler never replaces the inner result with a
// decoration failure.
func (r *Registry) wrap(name, backendVersion string, inner server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := tracer.Start(ctx, "tool."+name)
		defer span.End()
		span.SetAttributes(attribute.String("tool", name))

		start := time.Now()
		result, err := inner(ctx, request)
		elapsed := time.Since(start)

		success := err == nil && (result == nil || !result.IsError)

		attrs := []attribute.KeyValue{
			attribute.String("tool", name),
			attribute.Bool("success", success),
		}
		if toolCallCounter != nil {
			toolCallCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
		if toolCallDuration != nil {
			toolCallDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
		}
		if success {
			span.SetStatus(codes.Ok, "")
		} else {
			span.SetStatus(codes.Error, "tool call failed")
		}

		if r.tracker != nil {
			r.tracker.Track(name, success)
		}

		if err != nil {
			return nil, err
		}
		return r.decorateLegacyContext(ctx, backendVersion, result), nil
	}
}
