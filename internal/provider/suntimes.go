package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wanderdash/backend/internal/domain"
)

// DefaultSunTimesBaseURL is the public sunrise-sunset.org endpoint.
const DefaultSunTimesBaseURL = "https://api.sunrise-sunset.org"

// SunTimes fetches sunrise/sunset and twilight instants by coordinates.
type SunTimes struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSunTimes returns a client against the public API.
func NewSunTimes(client *http.Client) *SunTimes {
	return &SunTimes{BaseURL: DefaultSunTimesBaseURL, HTTPClient: client}
}

// sunResponse mirrors the upstream envelope. Status is "OK" on success;
// formatted=0 makes the instants RFC 3339.
type sunResponse struct {
	Results domain.SunTimes `json:"results"`
	Status  string          `json:"status"`
}

// ForDate returns the sun times at the coordinates for the given date.
func (s *SunTimes) ForDate(ctx context.Context, coords domain.Coordinates, date time.Time) (domain.SunTimes, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("date", date.Format("2006-01-02"))
	q.Set("formatted", "0")
	u := fmt.Sprintf("%s/json?%s", s.BaseURL, q.Encode())

	var resp sunResponse
	if err := getJSON(ctx, s.HTTPClient, u, &resp); err != nil {
		return domain.SunTimes{}, fmt.Errorf("provider.SunTimes.ForDate: %w", err)
	}
	if resp.Status != "OK" {
		return domain.SunTimes{}, fmt.Errorf("provider.SunTimes.ForDate: status %q", resp.Status)
	}
	return resp.Results, nil
}
