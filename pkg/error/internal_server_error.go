package error

import "net/http"

// InternalServerError deliberately carries a generic message; the
// originating cause is logged where it happens and never leaks to callers.
type InternalServerError string

func (err InternalServerError) Error() string {
	return string(err)
}

func (err InternalServerError) ErrCode() string {
	return "INTERNAL_SERVER_ERROR"
}

func (err InternalServerError) StatusCode() int {
	return http.StatusInternalServerError
}
