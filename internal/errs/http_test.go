package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	code := "USER_ALREADY_EXISTS"

	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewBadRequestError("dup", true, &code, nil), http.StatusBadRequest, code},
		{NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{NewServiceUnavailableError("busy"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		if tc.err.Status != tc.status || tc.err.Code != tc.code {
			t.Errorf("Expected %d %s, got %d %s", tc.status, tc.code, tc.err.Status, tc.err.Code)
		}
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNotFoundError("User not found", true, nil))

	if !errors.Is(err, &HTTPError{}) {
		t.Error("Expected errors.Is to match any *HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Message != "User not found" {
		t.Errorf("Expected to unwrap the original error, got %v", httpErr)
	}
}
