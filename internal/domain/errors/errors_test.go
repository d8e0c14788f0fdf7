package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := NotFound("Order not found")
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound must unwrap to ErrNotFound")
	}
	if err.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.Status)
	}
	if err.Error() != "Order not found: not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestUpstreamKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("Failed to create payment order", cause)
	if !errors.Is(err, ErrUpstream) {
		t.Error("Upstream must unwrap to ErrUpstream")
	}
	if !errors.Is(err, cause) {
		t.Error("Upstream must keep the original cause")
	}
	if err.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.Status)
	}
}

func TestConstructorsMapStatuses(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{BadRequest("x"), http.StatusBadRequest},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{Conflict("x"), http.StatusConflict},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.status {
			t.Errorf("expected %d, got %d", tc.status, tc.err.Status)
		}
	}
}
