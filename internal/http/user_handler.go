package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	apperrors "task-manager.com/task-manager/internal/errors"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgUsersFetchedSuccess, users)
}

func (h *Handler) Profile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUnauthorized
	}

	return respond(c, http.StatusOK, constants.MsgUserProfileFetchedSuccess, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	user, err := h.userService.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgUserDeletedSuccess, user)
}
