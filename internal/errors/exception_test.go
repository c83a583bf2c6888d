package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodeAndPublicMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "exception", err: ErrTaskNotFound, wantStatus: http.StatusNotFound, wantMessage: "Task record not found"},
		{name: "wrapped exception", err: fmt.Errorf("load: %w", ErrForbiddenUpdateTask), wantStatus: http.StatusForbidden, wantMessage: ErrForbiddenUpdateTask.Message},
		{name: "conflict", err: ErrEmailTaken, wantStatus: http.StatusConflict, wantMessage: "Email is already taken"},
		{name: "password too long", err: ErrPasswordTooLong, wantStatus: http.StatusBadRequest, wantMessage: "password must be at most 72 bytes"},
		{name: "plain error hides its text", err: errors.New("dial tcp: refused"), wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, got)
			}
			if got := PublicMessage(tt.err); got != tt.wantMessage {
				t.Fatalf("expected %q, got %q", tt.wantMessage, got)
			}
		})
	}
}

func TestAsException(t *testing.T) {
	if _, ok := AsException(errors.New("boom")); ok {
		t.Fatal("plain error is not an exception")
	}

	appErr, ok := AsException(fmt.Errorf("wrap: %w", ErrUserNotFound))
	if !ok || appErr != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", appErr)
	}
}
