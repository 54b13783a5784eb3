// Package apperrors defines the error taxonomy shared by every service and
// the uniform JSON envelope the HTTP boundary serializes failures into.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Envelope is the wire shape of every failure response.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Details    string `json:"details"`
}

// Error is a failure with a fixed HTTP status. Services return these for
// every validation failure; anything else is mapped to a 500 at the boundary.
type Error struct {
	Status  int
	Kind    string
	Details string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

// Envelope returns the JSON envelope for this error.
func (e *Error) Envelope() Envelope {
	return Envelope{StatusCode: e.Status, Error: e.Kind, Details: e.Details}
}

// DefaultNotFoundMessage is used when a lookup fails without a caller-supplied
// message.
const DefaultNotFoundMessage = "Sorry, no results at this time"

// NotFound reports that a referenced entity or result set is absent.
func NotFound(details string) *Error {
	if details == "" {
		details = DefaultNotFoundMessage
	}
	return &Error{Status: http.StatusNotFound, Kind: "Not Found", Details: details}
}

// Conflict reports a uniqueness violation, a locked operation, or a
// stale-state mismatch.
func Conflict(details string) *Error {
	return &Error{Status: http.StatusConflict, Kind: "Duplicate entry", Details: details}
}

// ConflictWithKind is Conflict with a custom error label, used where the
// wire contract names the conflict differently (e.g. the locked result
// endpoint reports "Internal Server Error" with a 409 status).
func ConflictWithKind(kind, details string) *Error {
	return &Error{Status: http.StatusConflict, Kind: kind, Details: details}
}

// BadRequest reports malformed input, in practice a date string that does
// not parse as yyyy-MM-dd.
func BadRequest(details string) *Error {
	return &Error{Status: http.StatusBadRequest, Kind: "Bad Request", Details: details}
}

// Internal reports an unexpected failure; the message is passed through.
func Internal(details string) *Error {
	return &Error{Status: http.StatusInternalServerError, Kind: "Internal Server Error", Details: details}
}

// From extracts an *Error from err, or wraps err as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err.Error())
}
