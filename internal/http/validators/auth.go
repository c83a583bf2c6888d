package validators

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
)

const (
	minPasswordLength = 6
	// bcrypt only hashes the first 72 bytes
	maxPasswordLength = 72
)

func ValidateSignupRequest(r *dto.SignupRequest) error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = normalizeEmail(r.Email)

	if r.FullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "fullName is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}
	if len(r.Password) > maxPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at most 72 bytes")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	r.Email = normalizeEmail(r.Email)

	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return echo.NewHTTPError(http.StatusBadRequest, "email must be a valid email address")
	}
	return nil
}
