package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdash/backend/internal/provider"
)

func newHolidaysServer(t *testing.T, routes map[string]string) *provider.Holidays {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &provider.Holidays{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestHolidays_PublicHolidays(t *testing.T) {
	h := newHolidaysServer(t, map[string]string{
		"/PublicHolidays/2025/EG": `[
			{"date": "2025-01-07", "localName": "عيد الميلاد المجيد", "name": "Coptic Christmas", "types": ["Public"]},
			{"date": "2025-04-20", "localName": "شم النسيم", "name": "Sham El Nessim", "types": ["Public"]}
		]`,
	})

	holidays, err := h.PublicHolidays(context.Background(), 2025, "EG")
	require.NoError(t, err)

	require.Len(t, holidays, 2)
	assert.Equal(t, "2025-01-07", holidays[0].Date)
	assert.Equal(t, "Coptic Christmas", holidays[0].Name)
	assert.Equal(t, "عيد الميلاد المجيد", holidays[0].LocalName)
	assert.Equal(t, []string{"Public"}, holidays[0].Types)
}

func TestHolidays_LongWeekends(t *testing.T) {
	h := newHolidaysServer(t, map[string]string{
		"/LongWeekend/2025/EG": `[
			{"startDate": "2025-04-18", "endDate": "2025-04-21", "dayCount": 4, "needBridgeDay": false}
		]`,
	})

	weekends, err := h.LongWeekends(context.Background(), 2025, "EG")
	require.NoError(t, err)

	require.Len(t, weekends, 1)
	assert.Equal(t, "2025-04-18", weekends[0].StartDate)
	assert.Equal(t, "2025-04-21", weekends[0].EndDate)
	assert.Equal(t, 4, weekends[0].DayCount)
	assert.False(t, weekends[0].NeedBridgeDay)
}

func TestHolidays_AvailableCountries(t *testing.T) {
	h := newHolidaysServer(t, map[string]string{
		"/AvailableCountries": `[
			{"countryCode": "EG", "name": "Egypt"},
			{"countryCode": "JP", "name": "Japan"}
		]`,
	})

	countries, err := h.AvailableCountries(context.Background())
	require.NoError(t, err)

	require.Len(t, countries, 2)
	assert.Equal(t, "EG", countries[0].Code)
	assert.Equal(t, "Egypt", countries[0].Name)
}

func TestHolidays_UpstreamError(t *testing.T) {
	h := newHolidaysServer(t, nil)

	_, err := h.PublicHolidays(context.Background(), 2025, "XX")
	assert.ErrorContains(t, err, "status 404")
}
