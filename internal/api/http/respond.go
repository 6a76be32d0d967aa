package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"campusrent-backend/internal/ledger"
	"campusrent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, method, endpoint string, payload any) {
	httpReqTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message, method, endpoint string) {
	respondJSON(w, status, method, endpoint, errorResponse{Error: message})
}

// statusForError maps the core's typed failures onto HTTP statuses. Expected
// business failures become client errors; an inconsistency is a server fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrNoActiveRental):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrItemExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnknownUser):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ledger.ErrInconsistency):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
