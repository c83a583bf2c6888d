package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	"task-manager.com/task-manager/internal/http/validators"
)

func (h *Handler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateSignupRequest(&req); err != nil {
		return err
	}

	user, err := h.authService.Signup(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, constants.MsgUserSignupSuccess, user)
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgUserLoginSuccess, res)
}
