// Package httputil holds the request decoding and response writing helpers
// shared by every resource handler.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
)

// Decode reads a JSON request body into v. Malformed dates surface as a 400
// with the fixed wire message; any other decode failure is a generic 400.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var badDate *sharedtypes.ErrBadDate
		if errors.As(err, &badDate) {
			return apperrors.BadRequest("Invalid date format. Expected format is yyyy-MM-dd.")
		}
		return apperrors.BadRequest("Malformed request body: " + err.Error())
	}
	return nil
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError maps err to the uniform error envelope.
func RespondError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	Respond(w, appErr.Status, appErr.Envelope())
}
