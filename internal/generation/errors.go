package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package and its adapters.
var (
	// ErrConfiguration is returned when a required API key, model or endpoint
	// is missing. It is raised at construction time; nothing falls back to a
	// built-in credential.
	ErrConfiguration = errors.New("invalid generation configuration")

	// ErrRemoteCall is returned when a generative API or the relay answers with
	// a non-2xx status or an unusable body.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrInvalidResponse is returned when the upstream response is well-formed
	// JSON but carries no generated content.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response from generative API", ErrRemoteCall)

	// ErrContentBlocked is returned when the language model refuses the prompt
	// on safety grounds.
	ErrContentBlocked = fmt.Errorf("%w: content blocked by safety filters", ErrRemoteCall)
)

// maxErrorBodyLength bounds the upstream body kept on a RemoteCallError.
const maxErrorBodyLength = 512

// RemoteCallError describes a failed call to a remote endpoint.
// It always matches ErrRemoteCall with errors.Is.
type RemoteCallError struct {
	// Endpoint names the remote service or path that was called.
	Endpoint string
	// StatusCode is the HTTP status returned, or 0 if no response was received.
	StatusCode int
	// Body is the raw response body, truncated.
	Body string
	// Err is the underlying cause, if any.
	Err error
}

// NewRemoteCallError builds a RemoteCallError, truncating body.
func NewRemoteCallError(endpoint string, statusCode int, body string, err error) *RemoteCallError {
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength] + "..."
	}
	return &RemoteCallError{Endpoint: endpoint, StatusCode: statusCode, Body: body, Err: err}
}

// Error implements the error interface.
func (e *RemoteCallError) Error() string {
	msg := fmt.Sprintf("remote call to %s failed", e.Endpoint)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRemoteCall.
func (e *RemoteCallError) Is(target error) bool {
	return target == ErrRemoteCall
}
