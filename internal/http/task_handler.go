package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	"task-manager.com/task-manager/internal/http/validators"
)

func (h *Handler) CreateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequestData
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title, req.Description, userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, constants.MsgTaskCreatedSuccess, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var query dto.ListTasksQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	filter, err := validators.ParseListTasksQuery(&query)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgTasksFetchedSuccess, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgTaskDetailFetchedSuccess, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), userID, req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgTaskUpdateSuccess, task)
}

func (h *Handler) ChangeTaskStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.TaskStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateTaskStatusRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.ChangeStatus(c.Request().Context(), c.Param("id"), userID, req.Status)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgTaskStatusChangedSuccess, task)
}

func (h *Handler) AssignTaskUser(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.TaskAssignRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateTaskAssignRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.AssignUser(c.Request().Context(), c.Param("id"), userID, req.AssignedUser)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgUserAssignedSuccess, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, constants.MsgTaskDeletedSuccess, task)
}
