package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

// Deployments defines the deployment operations
type Deployments interface {
	Create(ctx context.Context, req api.CreateDeploymentRequest, apiKey string) (*api.Deployment, error)
	UploadArchive(ctx context.Context, dep *api.Deployment, archive []byte) error
	Start(ctx context.Context, id string, apiKey string) (json.RawMessage, error)
}

type deploymentsClient struct {
	client *BaseClient
}

// NewDeploymentsClient creates a new deployments client
func NewDeploymentsClient(client *BaseClient) Deployments {
	return &deploymentsClient{client: client}
}

// Create opens a deployment. The backend answers with a deployment ID and a
// presigned upload destination for the packaged archive.
func (c *deploymentsClient) Create(ctx context.Context, req api.CreateDeploymentRequest, apiKey string) (*api.Deployment, error) {
	resp, err := c.client.Post(ctx, "/api/deployments", req, apiKey)
	if err != nil {
		return nil, err
	}

	var dep api.Deployment
	if err := UnwrapInto(resp, &dep); err != nil {
		return nil, err
	}
	if dep.ID == "" || dep.UploadURL == "" {
		return nil, fmt.Errorf("backend returned an incomplete deployment descriptor")
	}
	return &dep, nil
}

// UploadArchive sends the zipped source tree to the presigned destination
// returned by Create. Presigned fields, when present, turn the upload into a
// multipart form POST; otherwise the archive body is PUT directly.
func (c *deploymentsClient) UploadArchive(ctx context.Context, dep *api.Deployment, archive []byte) error {
	var req *http.Request
	var err error

	if len(dep.UploadFields) > 0 {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for k, v := range dep.UploadFields {
			if werr := w.WriteField(k, v); werr != nil {
				return fmt.Errorf("failed to write upload field %s: %w", k, werr)
			}
		}
		part, werr := w.CreateFormFile("file", "deployment.zip")
		if werr != nil {
			return fmt.Errorf("failed to create upload part: %w", werr)
		}
		if _, werr := part.Write(archive); werr != nil {
			return fmt.Errorf("failed to write archive: %w", werr)
		}
		if werr := w.Close(); werr != nil {
			return fmt.Errorf("failed to finalize upload body: %w", werr)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, dep.UploadURL, &buf)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", w.FormDataContentType())
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPut, dep.UploadURL, bytes.NewReader(archive))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/zip")
	}

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    "archive upload rejected",
			Body:       string(body),
		}
	}
	return nil
}

// Start asks the backend to start a deployment whose archive is uploaded.
func (c *deploymentsClient) Start(ctx context.Context, id string, apiKey string) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/deployments/%s/start", url.PathEscape(id))
	resp, err := c.client.Post(ctx, path, nil, apiKey)
	if err != nil {
		return nil, err
	}
	return Unwrap(resp)
}
