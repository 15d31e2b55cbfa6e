package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client/api"
)

func TestDeploymentsCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/deployments", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success":true,"data":{"id":"dep-1","uploadUrl":"https://uploads.example/dep-1"}}`))
	}))
	defer srv.Close()

	deployments := NewDeploymentsClient(NewBaseClient(srv.URL, WithAPIKey("sk")))
	dep, err := deployments.Create(context.Background(), api.CreateDeploymentRequest{ProjectName: "demo"}, "")
	require.NoError(t, err)
	assert.Equal(t, "dep-1", dep.ID)
	assert.Equal(t, "https://uploads.example/dep-1", dep.UploadURL)
}

func TestDeploymentsCreateIncompleteDescriptor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"dep-1"}}`))
	}))
	defer srv.Close()

	deployments := NewDeploymentsClient(NewBaseClient(srv.URL))
	_, err := deployments.Create(context.Background(), api.CreateDeploymentRequest{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete deployment descriptor")
}

func TestUploadArchivePresignedPut(t *testing.T) {
	archive := []byte("PK\x03\x04fake-zip")
	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/zip", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, archive, body)
		w.WriteHeader(http.StatusOK)
	}))
	defer upload.Close()

	deployments := NewDeploymentsClient(NewBaseClient("http://localhost:0"))
	err := deployments.UploadArchive(context.Background(), &api.Deployment{
		ID:        "dep-1",
		UploadURL: upload.URL,
	}, archive)
	require.NoError(t, err)
}

func TestUploadArchiveMultipartWithFields(t *testing.T) {
	archive := []byte("PK\x03\x04fake-zip")
	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "signed-policy", r.FormValue("policy"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "deployment.zip", header.Filename)

		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, archive, body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer upload.Close()

	deployments := NewDeploymentsClient(NewBaseClient("http://localhost:0"))
	err := deployments.UploadArchive(context.Background(), &api.Deployment{
		ID:           "dep-1",
		UploadURL:    upload.URL,
		UploadFields: map[string]string{"policy": "signed-policy"},
	}, archive)
	require.NoError(t, err)
}

func TestUploadArchiveRejected(t *testing.T) {
	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("signature expired"))
	}))
	defer upload.Close()

	deployments := NewDeploymentsClient(NewBaseClient("http://localhost:0"))
	err := deployments.UploadArchive(context.Background(), &api.Deployment{
		ID:        "dep-1",
		UploadURL: upload.URL,
	}, []byte("zip"))
	require.Error(t, err)

	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, http.StatusForbidden, ce.StatusCode)
	assert.Equal(t, "signature expired", ce.Body)
}

func TestDeploymentsStart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/deployments/dep-1/start", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"status":"building"}}`))
	}))
	defer srv.Close()

	deployments := NewDeploymentsClient(NewBaseClient(srv.URL))
	data, err := deployments.Start(context.Background(), "dep-1", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"building"}`, string(data))
}
