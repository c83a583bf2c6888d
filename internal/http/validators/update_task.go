package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title == nil && r.Description == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title or description is required")
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
		}
		r.Title = &title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		if description == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "description must not be empty")
		}
		r.Description = &description
	}
	return nil
}

func ValidateTaskStatusRequest(r *dto.TaskStatusRequest) error {
	if r.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	if !r.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of New, InProgress, Done")
	}
	return nil
}

func ValidateTaskAssignRequest(r *dto.TaskAssignRequest) error {
	r.AssignedUser = strings.TrimSpace(r.AssignedUser)
	if r.AssignedUser == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "assignedUser is required")
	}
	return nil
}

// ParseTaskStatus validates an optional status query value.
func ParseTaskStatus(raw string) (*constants.TaskStatus, error) {
	if raw == "" {
		return nil, nil
	}
	status := constants.TaskStatus(raw)
	if !status.Valid() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "status must be one of New, InProgress, Done")
	}
	return &status, nil
}
