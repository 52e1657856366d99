package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdash/backend/internal/domain"
	"github.com/wanderdash/backend/internal/provider"
)

const forecastJSON = `{
	"current": {
		"time": "2025-06-15T12:00",
		"temperature_2m": 34.5,
		"relative_humidity_2m": 22,
		"apparent_temperature": 33.1,
		"weather_code": 0,
		"wind_speed_10m": 14.2,
		"wind_direction_10m": 350,
		"uv_index": 9.1
	},
	"hourly": {
		"time": ["2025-06-15T12:00", "2025-06-15T13:00"],
		"temperature_2m": [34.5, 35.0],
		"weather_code": [0, 1],
		"precipitation_probability": [0, 0]
	},
	"daily": {
		"time": ["2025-06-15"],
		"weather_code": [0],
		"temperature_2m_max": [36.0],
		"temperature_2m_min": [24.1],
		"sunrise": ["2025-06-15T04:54"],
		"sunset": ["2025-06-15T18:59"],
		"uv_index_max": [9.5],
		"precipitation_sum": [0],
		"precipitation_probability_max": [0],
		"wind_speed_10m_max": [18.4]
	}
}`

func TestWeather_Forecast(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(forecastJSON))
	}))
	t.Cleanup(srv.Close)

	w := &provider.Weather{BaseURL: srv.URL, HTTPClient: srv.Client()}
	forecast, err := w.Forecast(context.Background(), domain.Coordinates{Latitude: 30.03, Longitude: 31.23})
	require.NoError(t, err)

	assert.Equal(t, "30.03", gotQuery.Get("latitude"))
	assert.Equal(t, "31.23", gotQuery.Get("longitude"))
	assert.Equal(t, "auto", gotQuery.Get("timezone"))
	assert.NotEmpty(t, gotQuery.Get("current"))
	assert.NotEmpty(t, gotQuery.Get("hourly"))
	assert.NotEmpty(t, gotQuery.Get("daily"))

	assert.Equal(t, 34.5, forecast.Current.Temperature)
	assert.Equal(t, 0, forecast.Current.WeatherCode)
	require.Len(t, forecast.Hourly.Time, 2)
	assert.Equal(t, 35.0, forecast.Hourly.Temperature[1])
	require.Len(t, forecast.Daily.Time, 1)
	assert.Equal(t, 36.0, forecast.Daily.TemperatureMax[0])
}

func TestWeather_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	w := &provider.Weather{BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := w.Forecast(context.Background(), domain.Coordinates{})
	assert.ErrorContains(t, err, "status 400")
}
