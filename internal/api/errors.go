package api

import (
	"errors"
	"log/slog"
	"net/http"
)

// Error is a client-visible error with an HTTP status. Anything that is not
// an *Error is reported as a generic 500 with the cause logged server-side
// only.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest is a 400 validation error.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized is a 401 credential error.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden is a 403 authorization error.
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound is a 404 error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict is a 409 error.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// RespondError writes err to the response. Unexpected errors become a bare
// "Server error" so internals never leak to clients.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		Respond(w, apiErr.Status, map[string]string{"error": apiErr.Message})
		return
	}

	slog.Error("request failed",
		"method", r.Method, "path", r.URL.Path, "error", err)
	Respond(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
}
