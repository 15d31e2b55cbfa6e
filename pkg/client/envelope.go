package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Unwrap reads an HTTP response body and applies the standard envelope rules:
//
//   - no `success` key: the body predates the envelope, return it verbatim
//   - success true: return the `data` field (may be empty)
//   - success false: return a *api.BackendError built from the error detail
//
// The human-readable message prefers error.details over error.message; that
// precedence is a backend quirk callers depend on.
func Unwrap(resp *http.Response) (json.RawMessage, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return UnwrapBody(body)
}

// UnwrapBody is Unwrap for an already-read body.
func UnwrapBody(body []byte) (json.RawMessage, error) {
	var env api.StandardResponse
	if err := json.Unmarshal(body, &env); err != nil {
		// Not an envelope-shaped document. Legacy passthrough.
		return json.RawMessage(body), nil
	}
	if env.Success == nil {
		return json.RawMessage(body), nil
	}
	if *env.Success {
		return env.Data, nil
	}

	berr := &api.BackendError{
		Code:       "UNKNOWN_ERROR",
		Message:    resolveErrorMessage(env.Error),
		NextAction: env.NextAction,
	}
	if env.Error != nil && env.Error.Code != "" {
		berr.Code = env.Error.Code
	}
	return nil, berr
}

// UnwrapInto unwraps the envelope and decodes the data payload into target.
func UnwrapInto(resp *http.Response, target interface{}) error {
	data, err := Unwrap(resp)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func resolveErrorMessage(detail *api.ErrorDetail) string {
	if detail == nil {
		return "Unknown error"
	}
	if len(detail.Details) > 0 {
		var s string
		if err := json.Unmarshal(detail.Details, &s); err == nil {
			if s != "" {
				return s
			}
		} else {
			// Structured details: keep the raw JSON so nothing is lost.
			return string(detail.Details)
		}
	}
	if detail.Message != "" {
		return detail.Message
	}
	return "Unknown error"
}
