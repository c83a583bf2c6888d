package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "Email is already taken",
	StatusCode: http.StatusConflict,
}
