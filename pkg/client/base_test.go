package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func TestBaseClientAPIKeyHeader(t *testing.T) {
	var gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL, WithAPIKey("sk-default"))

	resp, err := c.Get(context.Background(), "/api/health", "")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "sk-default", gotKey)
	assert.Empty(t, gotAuth)

	// A per-call key overrides the configured default.
	resp, err = c.Get(context.Background(), "/api/health", "sk-override")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "sk-override", gotKey)
}

func TestBaseClientBearerAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL, WithBearerAuth("session-token"))

	resp, err := c.Get(context.Background(), "/api/metadata", "")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestBaseClientNoKeyNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("x-api-key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	resp, err := c.Get(context.Background(), "/api/health", "")
	require.NoError(t, err)
	resp.Body.Close()
}

func TestSendEnvelopeErrorOnHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":{"code":"SQL_ERROR","message":"syntax error"}}`))
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	_, err := c.Post(context.Background(), "/api/database/query", api.QueryRequest{Query: "SELEC 1"}, "")
	require.Error(t, err)

	var berr *api.BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "SQL_ERROR", berr.Code)
}

func TestSendClientErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	_, err := c.Get(context.Background(), "/api/missing", "")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusNotFound, ce.StatusCode)
	assert.Equal(t, "Not Found", ce.Message)
}

func TestPostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "users", r.FormValue("table"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "rows.json", header.Filename)

		contents, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(contents))

		w.Write([]byte(`{"success":true,"data":{"inserted":1}}`))
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL, WithAPIKey("sk"))
	resp, err := c.PostMultipart(context.Background(), "/api/database/bulk-upsert",
		map[string]string{"table": "users"},
		&MultipartFile{Field: "file", Name: "rows.json", Contents: strings.NewReader(`[{"id":1}]`)},
		"")
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := Unwrap(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inserted":1}`, string(data))
}
