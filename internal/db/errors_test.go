package db

import (
	"errors"
	"testing"
)

func TestError_WrapsOperation(t *testing.T) {
	inner := errors.New("connection reset")
	err := &Error{Op: OpGet, Err: inner}

	if err.Error() != "GET: connection reset" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("must unwrap to the inner error")
	}
}
