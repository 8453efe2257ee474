package domain

import (
	"errors"
	"testing"
)

func TestParseTaskStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want TaskStatus
	}{
		{"received", StatusReceived},
		{"RECEIVED", StatusReceived},
		{"running", StatusRunning},
		{"Running", StatusRunning},
		{"done", StatusDone},
		{"DONE", StatusDone},
		{"error", StatusError},
		{"Error", StatusError},
	}
	for _, tc := range cases {
		got, err := ParseTaskStatus(tc.raw, "t1")
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("%q: status = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseTaskStatus_NotFound(t *testing.T) {
	_, err := ParseTaskStatus("not found", "gone")
	var notFound *TaskNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want TaskNotFoundError", err)
	}
	if notFound.TaskID != "gone" {
		t.Errorf("task id = %q, want gone", notFound.TaskID)
	}
}

func TestParseTaskStatus_NotFoundCaseSensitive(t *testing.T) {
	for _, raw := range []string{"Not Found", "NOT FOUND", "not  found"} {
		_, err := ParseTaskStatus(raw, "t1")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("%q: err = %v, want ErrInvalidStatus", raw, err)
		}
	}
}

func TestParseTaskStatus_Unrecognized(t *testing.T) {
	_, err := ParseTaskStatus("pending", "t1")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestTaskStatusString(t *testing.T) {
	if got := StatusDone.String(); got != "done" {
		t.Errorf("String() = %q, want done", got)
	}
	if got := TaskStatus(42).String(); got != "TaskStatus(42)" {
		t.Errorf("String() = %q, want TaskStatus(42)", got)
	}
}
