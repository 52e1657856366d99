package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdash/backend/internal/domain"
)

func getSection(h http.Handler, section string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/destination/sections/"+section, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetSection_404_NoSelection(t *testing.T) {
	h := newTestHandler(t, deps{})

	rec := getSection(h, "holidays")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSection_422_UnknownSection(t *testing.T) {
	h := newTestHandler(t, deps{})
	selectEgypt(t, h)

	rec := getSection(h, "bogus")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetSection_Holidays_CachedAfterFirstFetch(t *testing.T) {
	calls := 0
	h := newTestHandler(t, deps{
		holidays: &mockHolidayProvider{
			publicHolidays: func(_ context.Context, year int, code string) ([]domain.Holiday, error) {
				calls++
				assert.Equal(t, "EG", code)
				return []domain.Holiday{{Date: "2025-01-07", Name: "Coptic Christmas", LocalName: "عيد الميلاد المجيد"}}, nil
			},
		},
	})
	selectEgypt(t, h)

	for i := 0; i < 2; i++ {
		rec := getSection(h, "holidays")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Section string           `json:"section"`
			Data    []domain.Holiday `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "holidays", resp.Section)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Coptic Christmas", resp.Data[0].Name)
	}

	assert.Equal(t, 1, calls, "second request must be served from the session cache")
}

func TestGetSection_502_ProviderFails(t *testing.T) {
	h := newTestHandler(t, deps{
		weather: &mockWeatherProvider{
			forecast: func(context.Context, domain.Coordinates) (domain.Weather, error) {
				return domain.Weather{}, errors.New("timeout")
			},
		},
	})
	selectEgypt(t, h)

	rec := getSection(h, "weather")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Error struct {
			Code     string `json:"code"`
			Category string `json:"category"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "fetch_failed", resp.Error.Code)
	assert.Equal(t, "weather", resp.Error.Category)
}

func TestGetSection_Events_422_NoCity(t *testing.T) {
	h := newTestHandler(t, deps{
		countries: &mockCountryProvider{
			summary: func(context.Context, string) (domain.CountrySummary, error) {
				// A country with no listed capital leaves the city empty.
				return domain.CountrySummary{Name: "Nauru", Code: "NR"}, nil
			},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/destination", jsonBody(t, map[string]any{"code": "NR"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec2 := getSection(h, "events")
	assert.Equal(t, http.StatusUnprocessableEntity, rec2.Code)
}

func TestGetSection_CityChangeEvictsCityScopedOnly(t *testing.T) {
	eventCalls, holidayCalls := 0, 0
	h := newTestHandler(t, deps{
		events: &mockEventProvider{
			byCity: func(_ context.Context, city, _ string) ([]domain.Event, error) {
				eventCalls++
				return []domain.Event{{ID: "ev-" + city, Name: city}}, nil
			},
		},
		holidays: &mockHolidayProvider{
			publicHolidays: func(context.Context, int, string) ([]domain.Holiday, error) {
				holidayCalls++
				return []domain.Holiday{{Date: "2025-01-07"}}, nil
			},
		},
	})
	selectEgypt(t, h)

	require.Equal(t, http.StatusOK, getSection(h, "events").Code)
	require.Equal(t, http.StatusOK, getSection(h, "holidays").Code)

	req := httptest.NewRequest(http.MethodPut, "/destination/city", jsonBody(t, map[string]any{"city": "Alexandria"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	require.Equal(t, http.StatusOK, getSection(h, "events").Code)
	require.Equal(t, http.StatusOK, getSection(h, "holidays").Code)

	assert.Equal(t, 2, eventCalls, "city change must evict the events cache")
	assert.Equal(t, 1, holidayCalls, "city change must not touch the holidays cache")
}

func TestGetSection_YearChangeEvictsYearScopedOnly(t *testing.T) {
	weatherCalls, holidayCalls := 0, 0
	h := newTestHandler(t, deps{
		weather: &mockWeatherProvider{
			forecast: func(context.Context, domain.Coordinates) (domain.Weather, error) {
				weatherCalls++
				return domain.Weather{}, nil
			},
		},
		holidays: &mockHolidayProvider{
			publicHolidays: func(_ context.Context, year int, _ string) ([]domain.Holiday, error) {
				holidayCalls++
				return []domain.Holiday{{Date: "2025-01-07"}}, nil
			},
		},
	})
	selectEgypt(t, h)

	require.Equal(t, http.StatusOK, getSection(h, "weather").Code)
	require.Equal(t, http.StatusOK, getSection(h, "holidays").Code)

	req := httptest.NewRequest(http.MethodPut, "/destination/year", jsonBody(t, map[string]any{"year": 2026}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	require.Equal(t, http.StatusOK, getSection(h, "weather").Code)
	require.Equal(t, http.StatusOK, getSection(h, "holidays").Code)

	assert.Equal(t, 1, weatherCalls, "year change must not touch the weather cache")
	assert.Equal(t, 2, holidayCalls, "year change must evict the holidays cache")
}

func TestGetSection_Currency_UsesCountryBase(t *testing.T) {
	var gotBase string
	h := newTestHandler(t, deps{
		currency: &mockCurrencyProvider{
			latest: func(_ context.Context, base string) (domain.RateTable, error) {
				gotBase = base
				return domain.RateTable{BaseCode: base, ConversionRates: map[string]float64{"USD": 0.021}}, nil
			},
		},
	})
	selectEgypt(t, h)

	rec := getSection(h, "currency")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EGP", gotBase, "rate table must be based on the destination's currency")
}

func TestGetSection_SunTimes(t *testing.T) {
	h := newTestHandler(t, deps{
		sun: &mockSunTimesProvider{
			forDate: func(_ context.Context, coords domain.Coordinates, _ time.Time) (domain.SunTimes, error) {
				assert.Equal(t, 30.03, coords.Latitude)
				return domain.SunTimes{Sunrise: "2025-06-15T02:54:41+00:00"}, nil
			},
		},
	})
	selectEgypt(t, h)

	rec := getSection(h, "sun-times")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.SunTimes `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2025-06-15T02:54:41+00:00", resp.Data.Sunrise)
}
