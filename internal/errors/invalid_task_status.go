package errors

import "net/http"

var ErrInvalidTaskStatus = &Exception{
	Message:    "status must be one of New, InProgress, Done",
	StatusCode: http.StatusBadRequest,
}
