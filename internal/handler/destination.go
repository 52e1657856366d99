package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wanderdash/backend/internal/domain"
	"github.com/wanderdash/backend/internal/session"
)

// destinationResponse is the identity block returned by selection and
// exploration. Facts is nil until the destination has been explored.
type destinationResponse struct {
	Country  string        `json:"country"`
	City     string        `json:"city"`
	Code     string        `json:"code"`
	Flag     string        `json:"flag,omitempty"`
	Year     int           `json:"year"`
	Capitals []string      `json:"capitals,omitempty"`
	Explored bool          `json:"explored"`
	Facts    *domain.Facts `json:"facts,omitempty"`
}

// ListCountries handles GET /countries, the selector list.
func (s *Server) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.holidays.AvailableCountries(r.Context())
	if err != nil {
		writeDomainError(w, &domain.FetchError{Category: "countries", Err: err})
		return
	}
	if countries == nil {
		countries = []domain.CountryOption{}
	}
	writeJSON(w, http.StatusOK, countries)
}

// SelectDestination handles PUT /destination. It constructs a fresh session
// for the given country code, discarding any previous one (persisted plans
// are untouched). City defaults to the first capital; year to the current
// year. Selecting a neighbor works the same way; only the code is needed.
func (s *Server) SelectDestination(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
		City string `json:"city"`
		Year int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "code is required")
		return
	}

	summary, err := s.countries.Summary(r.Context(), req.Code)
	if err != nil {
		writeDomainError(w, &domain.FetchError{Category: "country", Err: err})
		return
	}

	city := req.City
	if city == "" && len(summary.Capitals) > 0 {
		city = summary.Capitals[0]
	}
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	sess := session.New(summary.Name, city, summary.Code, summary.Flag, year, s.countries)
	s.sessions.Select(sess)

	writeJSON(w, http.StatusOK, destinationResponse{
		Country:  sess.Country(),
		City:     sess.CityName(),
		Code:     sess.Code(),
		Flag:     sess.Flag(),
		Year:     sess.Year(),
		Capitals: summary.Capitals,
	})
}

// ExploreDestination handles GET /destination. It loads (and memoizes) the
// country facts and marks the session explored. Re-exploring returns the
// cached facts without another provider call.
func (s *Server) ExploreDestination(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}

	facts, err := sess.LoadFacts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sess.MarkExplored()

	writeJSON(w, http.StatusOK, destinationResponse{
		Country:  sess.Country(),
		City:     sess.CityName(),
		Code:     sess.Code(),
		Flag:     sess.Flag(),
		Year:     sess.Year(),
		Explored: sess.Explored(),
		Facts:    &facts,
	})
}

// ClearDestination handles DELETE /destination. Stops the clock, clears the
// session, and discards it. 404 when nothing is selected.
func (s *Server) ClearDestination(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Clear() {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCity handles PUT /destination/city. Evicts the city-keyed sections
// (events, weather) and leaves the rest of the cache intact.
func (s *Server) SetCity(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}

	var req struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.City == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "city is required")
		return
	}

	sess.SetCity(req.City)
	w.WriteHeader(http.StatusNoContent)
}

// SetYear handles PUT /destination/year. Evicts the year-keyed sections
// (holidays, long-weekends).
func (s *Server) SetYear(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}

	var req struct {
		Year int `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Year <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "year must be a positive integer")
		return
	}

	sess.SetYear(req.Year)
	w.WriteHeader(http.StatusNoContent)
}

// LocalTime handles GET /destination/time. One-shot computation of the
// destination's wall time; facts are loaded on first use so the timezone
// offset is available.
func (s *Server) LocalTime(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}

	if _, err := sess.LoadFacts(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"local_time": sess.LocalTime(s.now()),
		"time_zone":  sess.TimeZone(),
	})
}

// StreamLocalTime handles GET /destination/time/stream: a server-sent-event
// stream of the destination's wall clock, one tick per second. The stream
// ends when the client disconnects or the session is cleared/replaced;
// the manager stops the clock on either transition, which closes the done
// channel below.
func (s *Server) StreamLocalTime(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", "streaming unsupported")
		return
	}

	if _, err := sess.LoadFacts(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	ticks := make(chan string, 1)
	done := s.sessions.Clock().Start(sess, time.Second, func(t string) {
		select {
		case ticks <- t:
		default: // slow client: drop the tick, the next one supersedes it
		}
	})

	for {
		select {
		case <-r.Context().Done():
			s.sessions.Clock().Stop()
			return
		case <-done:
			return
		case t := <-ticks:
			fmt.Fprintf(w, "data: %s\n\n", t)
			flusher.Flush()
		}
	}
}
