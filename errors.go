package textwave

import "github.com/textwave/textwave-go/internal/domain"

// Typed errors re-exported from the domain layer.
// Use errors.As() to check.
type (
	// APIError is a non-2xx HTTP response from the service.
	APIError = domain.APIError
	// TaskNotFoundError means the server does not know the task
	// identifier (expired or invalid task).
	TaskNotFoundError = domain.TaskNotFoundError
	// TimeoutError means polling exceeded the caller-specified duration.
	TimeoutError = domain.TimeoutError
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	// ErrDecode tags response bodies that did not match the expected shape.
	ErrDecode = domain.ErrDecode
	// ErrInvalidStatus signals an unrecognized task status string.
	ErrInvalidStatus = domain.ErrInvalidStatus
)
