package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wanderdash/backend/internal/domain"
)

// DefaultWeatherBaseURL is the public Open-Meteo forecast endpoint.
const DefaultWeatherBaseURL = "https://api.open-meteo.com/v1"

// Field lists requested from the forecast API. Kept as constants so the
// response structs and the request stay in sync.
const (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,wind_direction_10m,uv_index"
	hourlyFields  = "temperature_2m,weather_code,precipitation_probability"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset,uv_index_max,precipitation_sum,precipitation_probability_max,wind_speed_10m_max"
)

// Weather fetches forecasts by coordinates. No API key required.
type Weather struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewWeather returns a client against the public API.
func NewWeather(client *http.Client) *Weather {
	return &Weather{BaseURL: DefaultWeatherBaseURL, HTTPClient: client}
}

// Forecast returns current, hourly, and daily weather for the coordinates,
// with all times in the location's own timezone.
func (w *Weather) Forecast(ctx context.Context, coords domain.Coordinates) (domain.Weather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("hourly", hourlyFields)
	q.Set("daily", dailyFields)
	q.Set("timezone", "auto")
	u := fmt.Sprintf("%s/forecast?%s", w.BaseURL, q.Encode())

	var forecast domain.Weather
	if err := getJSON(ctx, w.HTTPClient, u, &forecast); err != nil {
		return domain.Weather{}, fmt.Errorf("provider.Weather.Forecast: %w", err)
	}
	return forecast, nil
}
