package domain

import (
	"fmt"
	"strings"
)

// TaskStatus is the server-reported state of a clustering task.
type TaskStatus int

// Task status values. The server knows no others.
const (
	StatusReceived TaskStatus = iota
	StatusRunning
	StatusDone
	StatusError
)

func (s TaskStatus) String() string {
	switch s {
	case StatusReceived:
		return "received"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("TaskStatus(%d)", int(s))
	}
}

// notFoundSentinel is matched against the raw status string before any
// case folding. The four real statuses match case-insensitively.
const notFoundSentinel = "not found"

// ParseTaskStatus maps a raw server status string to a TaskStatus.
// The "not found" sentinel becomes a *TaskNotFoundError carrying taskID.
// Any other unrecognized string is a contract violation (ErrInvalidStatus).
func ParseTaskStatus(raw, taskID string) (TaskStatus, error) {
	if raw == notFoundSentinel {
		return 0, &TaskNotFoundError{TaskID: taskID}
	}
	switch strings.ToLower(raw) {
	case "received":
		return StatusReceived, nil
	case "running":
		return StatusRunning, nil
	case "done":
		return StatusDone, nil
	case "error":
		return StatusError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}
