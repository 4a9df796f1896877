package api

import (
	"errors"
	"net/http"

	"github.com/cmaina/shoplist-api/internal/api/shared"
	"github.com/cmaina/shoplist-api/internal/service/auth"
	"github.com/cmaina/shoplist-api/internal/store"
)

// mapErrorToStatusCode maps internal errors to HTTP status codes.
// Duplicates map to 302 and not 409: the original API shipped that
// way and clients depend on it.
func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized
	case store.IsNotFound(err):
		return http.StatusNotFound
	case store.IsDuplicate(err):
		return http.StatusFound
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleUnexpectedError responds to errors the handler did not match
// explicitly. The raw error text goes to the log only; the client
// gets a fixed message for the mapped status.
func handleUnexpectedError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatusCode(err)
	message := "Something went wrong. Please try again"
	if status != http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
