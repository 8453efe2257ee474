package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDecode tags response bodies that did not match the expected shape.
	// Transport errors never wrap it, so callers can tell the two apart.
	ErrDecode = errors.New("decode response")
	// ErrInvalidStatus signals an unrecognized task status string.
	// The server contract allows exactly four statuses plus "not found".
	ErrInvalidStatus = errors.New("invalid task status")
)

// APIError is a non-2xx HTTP response from the service.
// Message is best-effort: the JSON "message" field when the body parses,
// the raw body text otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// TaskNotFoundError means the server does not know the task identifier:
// the task expired or the identifier is invalid. Not a transient failure.
type TaskNotFoundError struct {
	TaskID string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.TaskID)
}

// TimeoutError means polling exceeded the caller-specified duration
// without observing a done status.
type TimeoutError struct {
	TaskID  string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("task %s timed out after %s", e.TaskID, e.Timeout)
}
