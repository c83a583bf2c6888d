package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "Task record not found",
	StatusCode: http.StatusNotFound,
}
