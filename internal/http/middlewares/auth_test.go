package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "task-manager.com/task-manager/internal/errors"
)

type stubAuthenticator struct {
	token  string
	userID string
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (string, error) {
	if token != s.token {
		return "", apperrors.ErrUnauthorized
	}
	return s.userID, nil
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer abc", token: "abc", ok: true},
		{header: "  Bearer   abc  ", token: "abc", ok: true},
		{header: "Basic abc", ok: false},
		{header: "Bearer", ok: false},
		{header: "Bearer ", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		if ok != tt.ok || token != tt.token {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, token, ok, tt.token, tt.ok)
		}
	}
}

func TestBearerAuth(t *testing.T) {
	auth := stubAuthenticator{token: "good", userID: "user-1"}
	handler := BearerAuth(auth)(func(c echo.Context) error {
		userID, ok := CurrentUserID(c)
		if !ok {
			return errors.New("user id not set")
		}
		return c.String(http.StatusOK, userID)
	})

	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if rec.Body.String() != "user-1" {
		t.Fatalf("expected user-1, got %q", rec.Body.String())
	}

	for _, header := range []string{"", "Bearer bad"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		err := handler(e.NewContext(req, httptest.NewRecorder()))
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Fatalf("header %q: expected ErrUnauthorized, got %v", header, err)
		}
	}
}
