package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "task-manager.com/task-manager/internal/errors"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "exception", err: fmt.Errorf("delete: %w", apperrors.ErrTaskNotFound), wantStatus: http.StatusNotFound, wantMessage: "Task record not found"},
		{name: "echo client error", err: echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"), wantStatus: http.StatusTooManyRequests, wantMessage: "rate limit exceeded"},
		{name: "echo server error", err: echo.NewHTTPError(http.StatusServiceUnavailable, "db down"), wantStatus: http.StatusServiceUnavailable, wantMessage: "Service Unavailable"},
		{name: "unknown error", err: errors.New("sql: connection reset"), wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := resolveError(tt.err)
			if status != tt.wantStatus || message != tt.wantMessage {
				t.Fatalf("expected %d %q, got %d %q", tt.wantStatus, tt.wantMessage, status, message)
			}
		})
	}
}
