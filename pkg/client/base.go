package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// ClientError represents a client-side error: the backend answered with an
// HTTP error status and no parseable envelope.
type ClientError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err came from an HTTP 404, with or without a
// response envelope.
func IsNotFound(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) && ce.StatusCode == http.StatusNotFound {
		return true
	}
	var be *api.BackendError
	return errors.As(err, &be) && be.StatusCode == http.StatusNotFound
}

// ClientOption represents a configuration option for the client
type ClientOption func(*BaseClient)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *BaseClient) {
		c.HTTPClient = httpClient
	}
}

// WithAPIKey sets the default API key sent as the x-api-key header.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *BaseClient) {
		c.APIKey = apiKey
	}
}

// WithBearerAuth switches authentication to an Authorization: Bearer header,
// as used by the HTTP transport.
func WithBearerAuth(token string) ClientOption {
	return func(c *BaseClient) {
		c.APIKey = token
		c.bearer = true
	}
}

// BaseClient contains the shared HTTP functionality used by all sub-clients
type BaseClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	bearer bool
}

// NewBaseClient creates a new base client with the given configuration
func NewBaseClient(baseURL string, options ...ClientOption) *BaseClient {
	client := &BaseClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}

	for _, option := range options {
		option(client)
	}

	if client.HTTPClient == nil {
		client.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	return client
}

func (c *BaseClient) buildURL(path string) string {
	return c.BaseURL + path
}

// GetAPIKeyOrDefault returns the provided key or falls back to the client's
// default. Tool calls may carry a per-call key override.
func (c *BaseClient) GetAPIKeyOrDefault(apiKey string) string {
	if apiKey != "" {
		return apiKey
	}
	return c.APIKey
}

func (c *BaseClient) authorize(req *http.Request, apiKey string) {
	key := c.GetAPIKeyOrDefault(apiKey)
	if key == "" {
		return
	}
	if c.bearer {
		req.Header.Set("Authorization", "Bearer "+key)
		return
	}
	req.Header.Set("x-api-key", key)
}

func (c *BaseClient) doRequest(ctx context.Context, method, path string, body interface{}, apiKey string) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reqBody)
	if err != nil {
		return nil, err
	}
	c.authorize(req, apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

func (c *BaseClient) send(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	// Error statuses still carry the standard envelope when the backend
	// produced them itself. Surface those as BackendError; this path only
	// classifies bodies with no envelope at all.
	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if _, uerr := UnwrapBody(bodyBytes); uerr != nil {
			var berr *api.BackendError
			if errors.As(uerr, &berr) {
				berr.StatusCode = resp.StatusCode
			}
			return nil, uerr
		}

		return nil, &ClientError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(bodyBytes),
		}
	}

	return resp, nil
}

func (c *BaseClient) Get(ctx context.Context, path string, apiKey string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, apiKey)
}

func (c *BaseClient) Post(ctx context.Context, path string, body interface{}, apiKey string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body, apiKey)
}

func (c *BaseClient) Patch(ctx context.Context, path string, body interface{}, apiKey string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPatch, path, body, apiKey)
}

func (c *BaseClient) Delete(ctx context.Context, path string, apiKey string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil, apiKey)
}

// MultipartFile describes one file part of a multipart request.
type MultipartFile struct {
	Field    string
	Name     string
	Contents io.Reader
}

// PostMultipart sends a multipart/form-data request with the given form
// fields and file, used by bulk upserts and function code uploads.
func (c *BaseClient) PostMultipart(ctx context.Context, path string, fields map[string]string, file *MultipartFile, apiKey string) (*http.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, file.Contents); err != nil {
			return nil, fmt.Errorf("failed to copy file contents: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), &buf)
	if err != nil {
		return nil, err
	}
	c.authorize(req, apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req)
}

// DecodeResponse decodes a JSON response body into the target
func DecodeResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}
