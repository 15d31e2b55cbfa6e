// Package httpserver binds the MCP server to a streamable HTTP transport with
// session affinity, plus operator endpoints for health and metrics.
package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stackbase-dev/stackbase-mcp/pkg/tools"
)

const (
	APIPathMCP     = "/mcp"
	APIPathHealth  = "/healthz"
	APIPathMetrics = "/metrics"
)

// Server manages the HTTP transport.
type Server struct {
	httpServer *http.Server
	log        logr.Logger
}

// New builds the router: the MCP endpoint (sessions keyed by the
// Mcp-Session-Id header, handled by the streamable server), a liveness probe
// and Prometheus metrics.
func New(mcpServer *server.MCPServer, bindAddr string, log logr.Logger) *Server {
	streamable := server.NewStreamableHTTPServer(mcpServer,
		server.WithHTTPContextFunc(credentialContextFunc),
	)

	router := mux.NewRouter()
	router.Handle(APIPathMCP, streamable)
	router.PathPrefix(APIPathMCP + "/").Handler(streamable)
	router.HandleFunc(APIPathHealth, handleHealth).Methods(http.MethodGet)
	router.Handle(APIPathMetrics, promhttp.Handler()).Methods(http.MethodGet)

	return &Server{
		httpServer: &http.Server{
			Addr:              bindAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.log.Info("serving MCP over HTTP", "addr", s.httpServer.Addr, "endpoint", APIPathMCP)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// credentialContextFunc lifts the per-request Authorization and X-Base-URL
// headers into the tool-call context, so one server process can proxy for
// many clients with distinct credentials.
func credentialContextFunc(ctx context.Context, r *http.Request) context.Context {
	creds := tools.Credentials{
		BaseURL: r.Header.Get("X-Base-URL"),
	}
	if auth := r.Header.Get("Authorization"); auth != "" {
		creds.APIKey = strings.TrimPrefix(auth, "Bearer ")
		creds.Bearer = true
	}
	if creds.APIKey == "" && creds.BaseURL == "" {
		return ctx
	}
	return tools.WithCredentials(ctx, creds)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
