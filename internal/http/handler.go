package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
)

type Handler struct {
	authService *services.AuthService
	userService *services.UserService
	taskService *services.TaskService
	health      *repository.HealthRepository
}

func NewHandler(
	authService *services.AuthService,
	userService *services.UserService,
	taskService *services.TaskService,
	health *repository.HealthRepository,
) *Handler {
	return &Handler{
		authService: authService,
		userService: userService,
		taskService: taskService,
		health:      health,
	}
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		c.Logger().Errorf("health check failed: %v", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}

	return respond(c, http.StatusOK, constants.MsgHealthy, nil)
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, dto.Success(status, message, data))
}

func bind(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func currentUserID(c echo.Context) (string, error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}
