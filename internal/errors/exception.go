package errors

import (
	"errors"
	"net/http"
)

const internalMessage = "Internal server error"

// Exception is a failure the API reports to the client as is.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// AsException finds the first Exception in err's chain.
func AsException(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusCode is the HTTP status for err. Anything that is not an Exception
// is a 500.
func StatusCode(err error) int {
	if appErr, ok := AsException(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage is the message safe to show the client for err. Internal
// error text is never exposed.
func PublicMessage(err error) string {
	if appErr, ok := AsException(err); ok {
		return appErr.Message
	}
	return internalMessage
}
