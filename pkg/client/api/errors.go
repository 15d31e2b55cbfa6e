package api

import "fmt"

// BackendError is a failure the backend reported through the standard
// envelope (success:false). Message is already resolved from the envelope's
// details/message precedence. StatusCode carries the HTTP status the envelope
// arrived with, zero when the envelope came from a 2xx body.
type BackendError struct {
	Code       string
	Message    string
	NextAction string
	StatusCode int
}

func (e *BackendError) Error() string {
	text := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.NextAction != "" {
		text += ". " + e.NextAction
	}
	return text
}
