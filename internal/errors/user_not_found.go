package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "User record not found",
	StatusCode: http.StatusNotFound,
}
