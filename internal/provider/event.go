package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wanderdash/backend/internal/domain"
)

// DefaultEventsBaseURL is the Ticketmaster Discovery endpoint.
const DefaultEventsBaseURL = "https://app.ticketmaster.com/discovery/v2"

// eventPageSize caps how many events one fetch returns.
const eventPageSize = 20

// Events fetches ticketed events for a city. Requires an API key.
type Events struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewEvents returns a client against the public API with the given key.
func NewEvents(client *http.Client, apiKey string) *Events {
	return &Events{BaseURL: DefaultEventsBaseURL, APIKey: apiKey, HTTPClient: client}
}

// discoveryResponse mirrors the subset of the upstream envelope we read.
// Venue details arrive under the event's own _embedded block.
type discoveryResponse struct {
	Embedded struct {
		Events []struct {
			ID     string              `json:"id"`
			Name   string              `json:"name"`
			URL    string              `json:"url"`
			Images []domain.EventImage `json:"images"`
			Dates  domain.EventDates   `json:"dates"`
			Embedded struct {
				Venues []struct {
					Name string `json:"name"`
					City struct {
						Name string `json:"name"`
					} `json:"city"`
				} `json:"venues"`
			} `json:"_embedded"`
		} `json:"events"`
	} `json:"_embedded"`
}

// ByCity returns up to eventPageSize events for (city, countryCode).
// A city with no listed events yields an empty slice, not an error.
func (e *Events) ByCity(ctx context.Context, city, countryCode string) ([]domain.Event, error) {
	q := url.Values{}
	q.Set("apikey", e.APIKey)
	q.Set("city", city)
	q.Set("countryCode", countryCode)
	q.Set("size", fmt.Sprint(eventPageSize))
	u := fmt.Sprintf("%s/events.json?%s", e.BaseURL, q.Encode())

	var resp discoveryResponse
	if err := getJSON(ctx, e.HTTPClient, u, &resp); err != nil {
		return nil, fmt.Errorf("provider.Events.ByCity: %w", err)
	}

	events := make([]domain.Event, 0, len(resp.Embedded.Events))
	for _, raw := range resp.Embedded.Events {
		ev := domain.Event{
			ID:     raw.ID,
			Name:   raw.Name,
			URL:    raw.URL,
			Images: raw.Images,
			Dates:  raw.Dates,
		}
		for _, v := range raw.Embedded.Venues {
			ev.Venues = append(ev.Venues, domain.Venue{Name: v.Name, City: v.City.Name})
		}
		events = append(events, ev)
	}
	return events, nil
}
