package handler

import (
	"net/http"
	"strconv"

	"github.com/wanderdash/backend/internal/domain"
)

// ConvertCurrency handles GET /currency/convert?from=EGP&to=USD&amount=100.
// Works without a selected destination; the converter page is global.
func (s *Server) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	if from == "" || to == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "from and to are required")
		return
	}
	if from == to {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "from and to must differ")
		return
	}
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || amount <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "amount must be a positive number")
		return
	}

	conv, err := s.currency.Convert(r.Context(), from, to, amount)
	if err != nil {
		writeDomainError(w, &domain.FetchError{Category: string(domain.SectionCurrency), Err: err})
		return
	}
	writeJSON(w, http.StatusOK, conv)
}
