package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wanderdash/backend/internal/domain"
	"github.com/wanderdash/backend/internal/handler"
	"github.com/wanderdash/backend/internal/plan"
	"github.com/wanderdash/backend/internal/session"
	"github.com/wanderdash/backend/internal/storage"
)

// Test doubles for the provider interfaces, function-field style: set only
// the method fields your test needs, the rest panic loudly if reached.

type mockCountryProvider struct {
	facts   func(ctx context.Context, code string) (domain.Facts, error)
	summary func(ctx context.Context, code string) (domain.CountrySummary, error)
}

func (m *mockCountryProvider) Facts(ctx context.Context, code string) (domain.Facts, error) {
	return m.facts(ctx, code)
}
func (m *mockCountryProvider) Summary(ctx context.Context, code string) (domain.CountrySummary, error) {
	return m.summary(ctx, code)
}

type mockHolidayProvider struct {
	publicHolidays     func(ctx context.Context, year int, code string) ([]domain.Holiday, error)
	longWeekends       func(ctx context.Context, year int, code string) ([]domain.LongWeekend, error)
	availableCountries func(ctx context.Context) ([]domain.CountryOption, error)
}

func (m *mockHolidayProvider) PublicHolidays(ctx context.Context, year int, code string) ([]domain.Holiday, error) {
	return m.publicHolidays(ctx, year, code)
}
func (m *mockHolidayProvider) LongWeekends(ctx context.Context, year int, code string) ([]domain.LongWeekend, error) {
	return m.longWeekends(ctx, year, code)
}
func (m *mockHolidayProvider) AvailableCountries(ctx context.Context) ([]domain.CountryOption, error) {
	return m.availableCountries(ctx)
}

type mockEventProvider struct {
	byCity func(ctx context.Context, city, countryCode string) ([]domain.Event, error)
}

func (m *mockEventProvider) ByCity(ctx context.Context, city, countryCode string) ([]domain.Event, error) {
	return m.byCity(ctx, city, countryCode)
}

type mockWeatherProvider struct {
	forecast func(ctx context.Context, coords domain.Coordinates) (domain.Weather, error)
}

func (m *mockWeatherProvider) Forecast(ctx context.Context, coords domain.Coordinates) (domain.Weather, error) {
	return m.forecast(ctx, coords)
}

type mockSunTimesProvider struct {
	forDate func(ctx context.Context, coords domain.Coordinates, date time.Time) (domain.SunTimes, error)
}

func (m *mockSunTimesProvider) ForDate(ctx context.Context, coords domain.Coordinates, date time.Time) (domain.SunTimes, error) {
	return m.forDate(ctx, coords, date)
}

type mockCurrencyProvider struct {
	latest  func(ctx context.Context, base string) (domain.RateTable, error)
	convert func(ctx context.Context, from, to string, amount float64) (domain.Conversion, error)
}

func (m *mockCurrencyProvider) Latest(ctx context.Context, base string) (domain.RateTable, error) {
	return m.latest(ctx, base)
}
func (m *mockCurrencyProvider) Convert(ctx context.Context, from, to string, amount float64) (domain.Conversion, error) {
	return m.convert(ctx, from, to, amount)
}

var (
	_ handler.CountryProvider  = (*mockCountryProvider)(nil)
	_ handler.HolidayProvider  = (*mockHolidayProvider)(nil)
	_ handler.EventProvider    = (*mockEventProvider)(nil)
	_ handler.WeatherProvider  = (*mockWeatherProvider)(nil)
	_ handler.SunTimesProvider = (*mockSunTimesProvider)(nil)
	_ handler.CurrencyProvider = (*mockCurrencyProvider)(nil)
)

// deps bundles everything newTestHandler wires into a Server. Zero-value
// fields get benign defaults; tests override what they care about.
type deps struct {
	countries handler.CountryProvider
	holidays  handler.HolidayProvider
	events    handler.EventProvider
	weather   handler.WeatherProvider
	sun       handler.SunTimesProvider
	currency  handler.CurrencyProvider
	plans     handler.PlanStore
}

func egyptSummary() domain.CountrySummary {
	return domain.CountrySummary{
		Name:     "Egypt",
		Capitals: []string{"Cairo"},
		Code:     "EG",
		Flag:     "https://flagcdn.com/w320/eg.png",
	}
}

func egyptFacts() domain.Facts {
	return domain.Facts{
		OfficialName: "Arab Republic of Egypt",
		Region:       "Northern Africa",
		TimeZone:     "UTC+02:00",
		Continent:    "Africa",
		Currencies:   map[string]domain.CurrencyInfo{"EGP": {Name: "Egyptian pound", Symbol: "£"}},
		Latitude:     30.03,
		Longitude:    31.23,
	}
}

// newTestHandler builds the full router over the given deps, mirroring how
// main wires it in production (in-memory plan store instead of Postgres).
func newTestHandler(t *testing.T, d deps) http.Handler {
	t.Helper()

	if d.countries == nil {
		d.countries = &mockCountryProvider{
			facts: func(context.Context, string) (domain.Facts, error) {
				return egyptFacts(), nil
			},
			summary: func(context.Context, string) (domain.CountrySummary, error) {
				return egyptSummary(), nil
			},
		}
	}
	if d.plans == nil {
		store, err := plan.NewStore(context.Background(), storage.NewMemory())
		require.NoError(t, err)
		d.plans = store
	}

	srv := handler.NewServer(
		session.NewManager(),
		d.plans,
		d.countries,
		d.holidays,
		d.events,
		d.weather,
		d.sun,
		d.currency,
	)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
