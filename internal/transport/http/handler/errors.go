package handler

import (
	"errors"
	"net/http"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// writeServiceError translates a service error into an HTTP status and
// the standard error envelope. Unknown errors become a generic 500 with
// the underlying detail in the error field.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrServiceNotConfigured):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusInternalServerError, MessageEnvelope{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}
