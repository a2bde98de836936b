package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, kind and
// message.
func writeError(w http.ResponseWriter, status int, kind, message string, logger zerolog.Logger) {
	logger.Error().Str("error", kind).Str("message", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: kind, Message: message})
}

// writeServiceError maps a service-layer error to a status code and error
// body. Domain errors carry their own kind; anything else is internal.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForKind(domainErr.Kind), domainErr.Kind, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, model.ErrKindInternal, "internal server error", logger)
}

func statusForKind(kind string) int {
	switch kind {
	case model.ErrKindValidation:
		return http.StatusBadRequest
	case model.ErrKindProductNotFound:
		return http.StatusNotFound
	case model.ErrKindCartMismatch:
		return http.StatusNotFound
	case model.ErrKindDuplicateCartEntry:
		return http.StatusConflict
	case model.ErrKindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
