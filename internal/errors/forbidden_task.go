package errors

import "net/http"

var (
	ErrForbiddenUpdateTask = &Exception{
		Message:    "You don't have permission to update this task",
		StatusCode: http.StatusForbidden,
	}
	ErrForbiddenStatusChangeTask = &Exception{
		Message:    "You don't have permission to change the status of this task",
		StatusCode: http.StatusForbidden,
	}
	ErrForbiddenAssignTask = &Exception{
		Message:    "You don't have permission to assign this task",
		StatusCode: http.StatusForbidden,
	}
	ErrForbiddenDeleteTask = &Exception{
		Message:    "You don't have permission to delete this task",
		StatusCode: http.StatusForbidden,
	}
)
