package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wanderdash/backend/internal/domain"
)

// DefaultHolidaysBaseURL is the public Nager.Date endpoint.
const DefaultHolidaysBaseURL = "https://date.nager.at/api/v3"

// Holidays fetches public holidays, long weekends, and the list of countries
// the holiday data covers.
type Holidays struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHolidays returns a client against the public API.
func NewHolidays(client *http.Client) *Holidays {
	return &Holidays{BaseURL: DefaultHolidaysBaseURL, HTTPClient: client}
}

// PublicHolidays returns the ordered holiday list for (year, code).
func (h *Holidays) PublicHolidays(ctx context.Context, year int, code string) ([]domain.Holiday, error) {
	u := fmt.Sprintf("%s/PublicHolidays/%d/%s", h.BaseURL, year, url.PathEscape(code))

	var holidays []domain.Holiday
	if err := getJSON(ctx, h.HTTPClient, u, &holidays); err != nil {
		return nil, fmt.Errorf("provider.Holidays.PublicHolidays: %w", err)
	}
	return holidays, nil
}

// LongWeekends returns the long-weekend opportunities for (year, code).
func (h *Holidays) LongWeekends(ctx context.Context, year int, code string) ([]domain.LongWeekend, error) {
	u := fmt.Sprintf("%s/LongWeekend/%d/%s", h.BaseURL, year, url.PathEscape(code))

	var weekends []domain.LongWeekend
	if err := getJSON(ctx, h.HTTPClient, u, &weekends); err != nil {
		return nil, fmt.Errorf("provider.Holidays.LongWeekends: %w", err)
	}
	return weekends, nil
}

// AvailableCountries returns every country the holiday data covers, for the
// country selector.
func (h *Holidays) AvailableCountries(ctx context.Context) ([]domain.CountryOption, error) {
	u := h.BaseURL + "/AvailableCountries"

	var countries []domain.CountryOption
	if err := getJSON(ctx, h.HTTPClient, u, &countries); err != nil {
		return nil, fmt.Errorf("provider.Holidays.AvailableCountries: %w", err)
	}
	return countries, nil
}
