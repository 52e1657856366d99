package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wanderdash/backend/internal/domain"
)

// errorDetail is the machine-readable error body every failure returns.
type errorDetail struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"` // set for fetch failures
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON writes v with the given status. Encoding failures are swallowed:
// the status line has already been sent, nothing useful remains to be done.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps domain error kinds onto HTTP statuses:
// not found → 404, validation → 422, fetch failure → 502 (with the failed
// category tagged), superseded selection → 409, persistence → 503.
func writeDomainError(w http.ResponseWriter, err error) {
	var fetchErr *domain.FetchError
	switch {
	case errors.As(err, &fetchErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: errorDetail{
			Code:     "fetch_failed",
			Message:  fetchErr.Error(),
			Category: fetchErr.Category,
		}})
	case errors.Is(err, domain.ErrIndexOutOfRange):
		writeError(w, http.StatusNotFound, "index_out_of_range", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrSessionReplaced):
		writeError(w, http.StatusConflict, "selection_replaced", err.Error())
	case errors.Is(err, domain.ErrPersistence):
		writeError(w, http.StatusServiceUnavailable, "persistence_error", unwrapMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// unwrapMessage strips the "pkg.Type.Op:" wrapping prefixes so the client
// sees the human-readable tail, e.g.
// "plan.Store.RemoveAt: index 9 with 2 records: index out of range"
// → "index 9 with 2 records: index out of range".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		i := strings.Index(msg, ": ")
		if i < 0 || !looksLikeOpPrefix(msg[:i]) {
			return msg
		}
		msg = msg[i+2:]
	}
}

// looksLikeOpPrefix reports whether s is a "pkg.Type.Op" wrapping label
// rather than part of the message proper.
func looksLikeOpPrefix(s string) bool {
	return !strings.ContainsAny(s, " %") && strings.Count(s, ".") >= 1
}
