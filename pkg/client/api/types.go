package api

import "encoding/json"

// StandardResponse is the envelope every Stackbase endpoint wraps its payload
// in. Success is a pointer so that legacy bodies without the key can be told
// apart from explicit false.
type StandardResponse struct {
	Success    *bool           `json:"success,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Meta       json.RawMessage `json:"meta,omitempty"`
	NextAction string          `json:"nextAction,omitempty"`
}

// ErrorDetail carries the backend-reported failure description.
type ErrorDetail struct {
	Code    string          `json:"code"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// AnonKeyResponse is returned by POST /api/auth/tokens/anon.
type AnonKeyResponse struct {
	AnonKey   string `json:"anonKey"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// QueryRequest describes a raw SQL statement to run against the project
// database.
type QueryRequest struct {
	Query  string `json:"query"`
	Params []any  `json:"params,omitempty"`
}

// CreateBucketRequest creates a storage bucket.
type CreateBucketRequest struct {
	BucketName string `json:"bucketName"`
	IsPublic   bool   `json:"isPublic"`
}

// Bucket describes a storage bucket.
type Bucket struct {
	Name      string `json:"name"`
	Public    bool   `json:"public"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// FunctionRequest creates or updates an edge function. Code carries the
// function source inline; file-based uploads go through multipart instead.
type FunctionRequest struct {
	Slug        string `json:"slug,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
}

// Function describes a deployed edge function.
type Function struct {
	Slug        string `json:"slug"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ScheduleRequest creates or replaces a cron schedule for an edge function.
type ScheduleRequest struct {
	Name         string `json:"name"`
	Cron         string `json:"cron"`
	FunctionSlug string `json:"functionSlug,omitempty"`
}

// CreateDeploymentRequest opens a deployment and asks the backend for an
// upload destination.
type CreateDeploymentRequest struct {
	ProjectName string `json:"projectName,omitempty"`
	Framework   string `json:"framework,omitempty"`
}

// Deployment is the backend's answer to a deployment create: an ID plus the
// presigned destination the packaged archive must be sent to.
type Deployment struct {
	ID           string            `json:"id"`
	UploadURL    string            `json:"uploadUrl"`
	UploadFields map[string]string `json:"uploadFields,omitempty"`
	Status       string            `json:"status,omitempty"`
}

// Template describes a project template for a frontend framework.
type Template struct {
	Frame   string `json:"frame"`
	RepoURL string `json:"repoUrl"`
	Branch  string `json:"branch,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// UsageEvent is the fire-and-forget telemetry record posted after each tool
// call.
type UsageEvent struct {
	ID        string `json:"id,omitempty"`
	ToolName  string `json:"toolName"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp,omitempty"`
}
