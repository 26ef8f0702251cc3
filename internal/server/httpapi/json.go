// Package httpapi is the thin HTTP boundary of the service: route
// dispatch, session extraction, and the mapping from classified errors to
// status codes. All business decisions live in the services layer.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"qanda-service/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a classified failure to a status code and a terse
// message. Moderation outcomes deliberately collapse to 500: the upstream
// endpoint's status codes are between us and it, not between the caller
// and us.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrParse), errors.Is(err, common.ErrMissingParameters):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "cannot verify token"})
	case errors.Is(err, common.ErrWrongCredential):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "wrong email/password combination"})
	case errors.Is(err, common.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no permission to change the underlying resource"})
	case errors.Is(err, common.ErrDuplicateAccount):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "account already exists"})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, common.ErrQuery):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "cannot update data"})
	default:
		// Moderation failures (APIError, ErrTransport, ErrDecode), crypto
		// failures and anything unclassified.
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
