package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wanderdash/backend/internal/domain"
)

// planCounts breaks the collection size down by type for the filter badges.
type planCounts struct {
	All          int `json:"all"`
	Holidays     int `json:"holidays"`
	Events       int `json:"events"`
	LongWeekends int `json:"longWeekends"`
}

type plansResponse struct {
	Data   []domain.PlanRecord `json:"data"`
	Counts planCounts          `json:"counts"`
}

type planRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// decodePlanRequest parses and validates a {type, data} body.
func decodePlanRequest(r *http.Request) (domain.PlanType, json.RawMessage, error) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", nil, err
	}
	typ, err := domain.ParsePlanType(req.Type)
	if err != nil {
		return "", nil, err
	}
	if len(req.Data) == 0 {
		return "", nil, domain.ErrValidation
	}
	return typ, req.Data, nil
}

// ListPlans handles GET /plans: the full ordered sequence plus per-type
// counts. Counts are derived here; the store only knows the sequence.
func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	records := s.plans.List()
	if records == nil {
		records = []domain.PlanRecord{}
	}

	counts := planCounts{All: len(records)}
	for _, rec := range records {
		switch rec.Type {
		case domain.PlanHolidays:
			counts.Holidays++
		case domain.PlanEvents:
			counts.Events++
		case domain.PlanLongWeekends:
			counts.LongWeekends++
		}
	}

	writeJSON(w, http.StatusOK, plansResponse{Data: records, Counts: counts})
}

// SavePlan handles POST /plans. The duplicate check lives here, at the
// caller boundary; the store itself appends unconditionally. Saving a
// record equal (under its type's rule) to one already stored is a 409.
func (s *Server) SavePlan(w http.ResponseWriter, r *http.Request) {
	typ, data, err := decodePlanRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "type and data are required")
		return
	}

	if _, exists := s.plans.IndexOf(typ, data); exists {
		writeError(w, http.StatusConflict, "already_saved", "an equal record is already in the plans")
		return
	}

	rec, err := s.plans.Save(r.Context(), typ, data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// TogglePlan handles POST /plans/toggle, the save-button flow: remove the
// record if an equal one is stored, save it otherwise.
func (s *Server) TogglePlan(w http.ResponseWriter, r *http.Request) {
	typ, data, err := decodePlanRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "type and data are required")
		return
	}

	if idx, exists := s.plans.IndexOf(typ, data); exists {
		if err := s.plans.RemoveAt(r.Context(), idx); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"saved": false, "count": len(s.plans.List())})
		return
	}

	if _, err := s.plans.Save(r.Context(), typ, data); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": true, "count": len(s.plans.List())})
}

// RemovePlan handles DELETE /plans/{index}: purely positional removal.
func (s *Server) RemovePlan(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "index must be an integer")
		return
	}

	if err := s.plans.RemoveAt(r.Context(), index); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearPlans handles DELETE /plans: persists an empty sequence.
func (s *Server) ClearPlans(w http.ResponseWriter, r *http.Request) {
	if err := s.plans.ClearAll(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
