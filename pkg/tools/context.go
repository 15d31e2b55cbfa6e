package tools

import (
	"context"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client"
)

type contextKey int

const credentialsKey contextKey = iota

// Credentials are per-session overrides injected by the HTTP transport from
// the Authorization and X-Base-URL request headers. The stdio transport never
// sets them; tool calls then use the process configuration.
type Credentials struct {
	APIKey  string
	BaseURL string
	Bearer  bool
}

// WithCredentials returns a context carrying transport-supplied credentials.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, creds)
}

// CredentialsFrom extracts transport-supplied credentials, if any.
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey).(Credentials)
	return creds, ok
}

// clientsFor returns the client set a tool call should use: the registry's
// default set, or a per-call set when the transport injected credentials.
func (r *Registry) clientsFor(ctx context.Context) *client.ClientSet {
	creds, ok := CredentialsFrom(ctx)
	if !ok {
		return r.clients
	}

	baseURL := creds.BaseURL
	if baseURL == "" {
		baseURL = r.cfg.APIBaseURL
	}
	options := []client.ClientOption{}
	if creds.Bearer {
		options = append(options, client.WithBearerAuth(creds.APIKey))
	} else if creds.APIKey != "" {
		options = append(options, client.WithAPIKey(creds.APIKey))
	} else {
		options = append(options, client.WithAPIKey(r.cfg.APIKey))
	}
	return client.New(baseURL, options...)
}

// hasAPIKey reports whether an authenticated call is possible: a per-call
// apiKey argument, transport credentials, or the process configuration.
func (r *Registry) hasAPIKey(ctx context.Context, override string) bool {
	if override != "" || r.cfg.APIKey != "" {
		return true
	}
	creds, ok := CredentialsFrom(ctx)
	return ok && creds.APIKey != ""
}
