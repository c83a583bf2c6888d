package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "Unauthorized",
	StatusCode: http.StatusUnauthorized,
}
