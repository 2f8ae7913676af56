package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse  = errors.New("handler returned nil response")
	ErrNilComponent = errors.New("nil templ component")
	ErrEncodeJSON   = errors.New("failed to encode JSON response")

	// ErrWriteResponse reports a body write that failed after the status
	// line was sent. Error handlers must not write another response.
	ErrWriteResponse = errors.New("failed to write response")
)

// HTTPError carries an HTTP status code through the error chain.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Stable machine-readable identifier
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)
