package dto

import "task-manager.com/task-manager/internal/constants"

type TaskRequestData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest is a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type TaskStatusRequest struct {
	Status constants.TaskStatus `json:"status"`
}

type TaskAssignRequest struct {
	AssignedUser string `json:"assignedUser"`
}

type ListTasksQuery struct {
	Status       string `query:"status"`
	AssignedUser string `query:"assignedUser"`
	CreatedAt    string `query:"createdAt"`
}
