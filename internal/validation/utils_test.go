package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/questions/internal/errs"
	"github.com/labstack/echo/v4"
)

type saveUserRequest struct {
	ID    int64  `param:"id" json:"-" validate:"gte=0"`
	FName string `json:"fname" validate:"required,max=8"`
	LName string `json:"lname" validate:"required"`
}

func (r *saveUserRequest) Validate() error {
	return Struct(r)
}

type rankingRequest struct {
	N int `query:"n" validate:"gte=0,lte=100"`
}

func (r *rankingRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "body", Message: "must mention a question"}}
}

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(http.MethodPut, "/users/7", `{"fname":"Ada","lname":"Lovelace","id":99}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	req := &saveUserRequest{}
	if err := BindAndValidate(c, req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if req.ID != 7 {
		t.Errorf("Expected ID from the path, got %d", req.ID)
	}
	if req.FName != "Ada" || req.LName != "Lovelace" {
		t.Errorf("Unexpected names: %+v", req)
	}
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"fname":"Bartholomew"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &saveUserRequest{}))
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", httpErr.Status)
	}

	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Error
	}
	if got["fname"] != "must not exceed 8 characters" {
		t.Errorf("Unexpected fname error %q", got["fname"])
	}
	if got["lname"] != "is required" {
		t.Errorf("Unexpected lname error %q", got["lname"])
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/users", `{"fname":`)

	httpErr := asHTTPError(t, BindAndValidate(c, &saveUserRequest{}))
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", httpErr.Status)
	}
	if strings.Contains(httpErr.Message, "unexpected") {
		t.Errorf("Decoder details leaked into %q", httpErr.Message)
	}
}

func TestBindAndValidateQueryBounds(t *testing.T) {
	c := newContext(http.MethodGet, "/questions/most-liked?n=101", "")

	httpErr := asHTTPError(t, BindAndValidate(c, &rankingRequest{}))
	if len(httpErr.Errors) != 1 {
		t.Fatalf("Expected one field error, got %+v", httpErr.Errors)
	}
	if httpErr.Errors[0].Field != "n" || httpErr.Errors[0].Error != "must be at most 100" {
		t.Errorf("Unexpected field error %+v", httpErr.Errors[0])
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")

	httpErr := asHTTPError(t, BindAndValidate(c, &customRequest{}))
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "body" {
		t.Errorf("Unexpected field errors %+v", httpErr.Errors)
	}
}
