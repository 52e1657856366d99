// Package handler implements the HTTP surface of the Wanderdash API; the
// boundary the browser dashboard talks to. Handlers are methods on Server,
// split into files per resource (destination, sections, plans, currency),
// all sharing the same struct so they can reach its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wanderdash/backend/internal/domain"
	"github.com/wanderdash/backend/internal/session"
	"github.com/wanderdash/backend/spec"
)

// Provider interfaces are defined here, in the consumer package, per the Go
// convention "accept interfaces, return concrete types". Handler tests
// inject function-field mocks; production wires the provider package's
// concrete clients.

// CountryProvider looks up country metadata by ISO code.
type CountryProvider interface {
	Facts(ctx context.Context, code string) (domain.Facts, error)
	Summary(ctx context.Context, code string) (domain.CountrySummary, error)
}

// HolidayProvider serves year-keyed holiday data and the selector list.
type HolidayProvider interface {
	PublicHolidays(ctx context.Context, year int, code string) ([]domain.Holiday, error)
	LongWeekends(ctx context.Context, year int, code string) ([]domain.LongWeekend, error)
	AvailableCountries(ctx context.Context) ([]domain.CountryOption, error)
}

// EventProvider serves city-keyed ticketed events.
type EventProvider interface {
	ByCity(ctx context.Context, city, countryCode string) ([]domain.Event, error)
}

// WeatherProvider serves coordinate-keyed forecasts.
type WeatherProvider interface {
	Forecast(ctx context.Context, coords domain.Coordinates) (domain.Weather, error)
}

// SunTimesProvider serves coordinate-and-date-keyed sun times.
type SunTimesProvider interface {
	ForDate(ctx context.Context, coords domain.Coordinates, date time.Time) (domain.SunTimes, error)
}

// CurrencyProvider serves exchange-rate tables and pair conversions.
type CurrencyProvider interface {
	Latest(ctx context.Context, base string) (domain.RateTable, error)
	Convert(ctx context.Context, from, to string, amount float64) (domain.Conversion, error)
}

// PlanStore is the persisted bookmark collection the plan handlers mutate.
type PlanStore interface {
	List() []domain.PlanRecord
	Save(ctx context.Context, typ domain.PlanType, data json.RawMessage) (domain.PlanRecord, error)
	IndexOf(typ domain.PlanType, data json.RawMessage) (int, bool)
	RemoveAt(ctx context.Context, index int) error
	ClearAll(ctx context.Context) error
}

// Server holds every dependency the handlers need: the session manager
// (single live destination + clock), the plan store, and the six providers.
type Server struct {
	sessions *session.Manager
	plans    PlanStore

	countries CountryProvider
	holidays  HolidayProvider
	events    EventProvider
	weather   WeatherProvider
	sun       SunTimesProvider
	currency  CurrencyProvider

	// now is the time source for local-time and sun-date computations,
	// swappable in tests.
	now func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	sessions *session.Manager,
	plans PlanStore,
	countries CountryProvider,
	holidays HolidayProvider,
	events EventProvider,
	weather WeatherProvider,
	sun SunTimesProvider,
	currency CurrencyProvider,
) *Server {
	return &Server{
		sessions:  sessions,
		plans:     plans,
		countries: countries,
		holidays:  holidays,
		events:    events,
		weather:   weather,
		sun:       sun,
		currency:  currency,
		now:       time.Now,
	}
}

// Routes builds the router for the full API surface. Cross-cutting
// middleware (logging, CORS, body limits) is applied by main, not here.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.Health)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec.OpenAPI)
	})
	r.Get("/countries", s.ListCountries)

	r.Route("/destination", func(r chi.Router) {
		r.Put("/", s.SelectDestination)
		r.Get("/", s.ExploreDestination)
		r.Delete("/", s.ClearDestination)
		r.Put("/city", s.SetCity)
		r.Put("/year", s.SetYear)
		r.Get("/time", s.LocalTime)
		r.Get("/time/stream", s.StreamLocalTime)
		r.Get("/sections/{section}", s.GetSection)
	})

	r.Get("/currency/convert", s.ConvertCurrency)

	r.Route("/plans", func(r chi.Router) {
		r.Get("/", s.ListPlans)
		r.Post("/", s.SavePlan)
		r.Post("/toggle", s.TogglePlan)
		r.Delete("/{index}", s.RemovePlan)
		r.Delete("/", s.ClearPlans)
	})

	return r
}
