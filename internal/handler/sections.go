package handler

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/wanderdash/backend/internal/domain"
	"github.com/wanderdash/backend/internal/session"
)

// sectionResponse wraps one section's payload with its name so the client
// can route it to the right view.
type sectionResponse struct {
	Section domain.Section `json:"section"`
	Data    any            `json:"data"`
}

// GetSection handles GET /destination/sections/{section}: cache-or-fetch of
// one category for the current destination. A cached payload is returned
// without a provider call; a fetched one is cached before returning. If the
// selection changes mid-fetch the late result is discarded (409).
func (s *Server) GetSection(w http.ResponseWriter, r *http.Request) {
	sec, err := domain.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sess, ok := s.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no destination selected")
		return
	}

	fetch, err := s.sectionProvider(sec, sess)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	payload, err := s.sessions.FetchSection(r.Context(), sec, fetch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sectionResponse{Section: sec, Data: payload})
}

// sectionProvider builds the fetch closure for one section over the
// session's current country/city/year. Input validation that can fail
// before any network call (missing city, unknown section) happens here.
func (s *Server) sectionProvider(sec domain.Section, sess *session.Session) (session.SectionProvider, error) {
	switch sec {
	case domain.SectionHolidays:
		year, code := sess.Year(), sess.Code()
		return func(ctx context.Context) (any, error) {
			return s.holidays.PublicHolidays(ctx, year, code)
		}, nil

	case domain.SectionLongWeekends:
		year, code := sess.Year(), sess.Code()
		return func(ctx context.Context) (any, error) {
			return s.holidays.LongWeekends(ctx, year, code)
		}, nil

	case domain.SectionEvents:
		city, code := sess.CityName(), sess.Code()
		if city == "" {
			return nil, fmt.Errorf("%w: select a city first", domain.ErrValidation)
		}
		return func(ctx context.Context) (any, error) {
			return s.events.ByCity(ctx, city, code)
		}, nil

	case domain.SectionWeather:
		return func(ctx context.Context) (any, error) {
			coords, err := sess.Coordinates(ctx)
			if err != nil {
				return nil, err
			}
			return s.weather.Forecast(ctx, coords)
		}, nil

	case domain.SectionSunTimes:
		date := s.now()
		return func(ctx context.Context) (any, error) {
			coords, err := sess.Coordinates(ctx)
			if err != nil {
				return nil, err
			}
			return s.sun.ForDate(ctx, coords, date)
		}, nil

	case domain.SectionCurrency:
		return func(ctx context.Context) (any, error) {
			facts, err := sess.LoadFacts(ctx)
			if err != nil {
				return nil, err
			}
			return s.currency.Latest(ctx, baseCurrency(facts))
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown section %q", domain.ErrValidation, sec)
}

// baseCurrency picks the destination's rate-table base: the country's first
// currency code in lexical order, or USD for countries the facts list none.
func baseCurrency(facts domain.Facts) string {
	codes := make([]string, 0, len(facts.Currencies))
	for code := range facts.Currencies {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return "USD"
	}
	sort.Strings(codes)
	return codes[0]
}
