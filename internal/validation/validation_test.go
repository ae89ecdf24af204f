package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/labstack/echo/v4"
)

type signUp struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Deposit  string `json:"deposit" validate:"omitempty,money"`
}

func (s *signUp) Validate() error { return Struct(s) }

type withCustom struct {
	Start string `json:"start"`
}

func (w *withCustom) Validate() error {
	return CustomValidationErrors{{Field: "start", Message: "must be before end"}}
}

func bindRequest(t *testing.T, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestBindAndValidateOK(t *testing.T) {
	c := bindRequest(t, `{"name":"Devin Sanders","email":"devin@example.com","password":"password1","deposit":"89.99"}`)

	var payload signUp
	if err := BindAndValidate(c, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Email != "devin@example.com" {
		t.Fatalf("payload not bound: %+v", payload)
	}
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := bindRequest(t, `{"name":"","email":"nope","password":"short","deposit":"1.005"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &signUp{}))
	if httpErr.Status != http.StatusBadRequest || !httpErr.Override {
		t.Fatalf("unexpected error: %+v", httpErr)
	}

	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Error
	}
	want := map[string]string{
		"name":     "is required",
		"email":    "must be a valid email address",
		"password": "must be at least 8 characters",
		"deposit":  "must be a non-negative amount with at most two decimals",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := bindRequest(t, `{"name":`)

	httpErr := asHTTPError(t, BindAndValidate(c, &signUp{}))
	if httpErr.Status != http.StatusBadRequest || httpErr.Message == "" {
		t.Fatalf("unexpected error: %+v", httpErr)
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := bindRequest(t, `{"start":"2026-01-01"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &withCustom{}))
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "start" {
		t.Fatalf("unexpected field errors: %+v", httpErr.Errors)
	}
}

func TestMoneyRule(t *testing.T) {
	type price struct {
		Amount string `json:"amount" validate:"money"`
	}
	for amount, ok := range map[string]bool{
		"":            true,
		"0":           true,
		"150":         true,
		"89.99":       true,
		"89.999":      false,
		"-1":          false,
		"abc":         false,
		"1e2":         true,
		"21474836.47": true,
		"21474836.48": false,
		"1E10":        false,
		"1e17":        false,
	} {
		err := Struct(price{Amount: amount})
		if (err == nil) != ok {
			t.Errorf("money(%q): err = %v, want ok=%v", amount, err, ok)
		}
	}
}
