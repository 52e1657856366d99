package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wanderdash/backend/internal/domain"
)

// DefaultCountriesBaseURL is the public RestCountries endpoint.
const DefaultCountriesBaseURL = "https://restcountries.com/v3.1"

// Countries fetches country metadata (facts, capitals, flag) by ISO code.
type Countries struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewCountries returns a client against the public API.
func NewCountries(client *http.Client) *Countries {
	return &Countries{BaseURL: DefaultCountriesBaseURL, HTTPClient: client}
}

// restCountry mirrors the subset of the upstream response we read.
type restCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA2      string   `json:"cca2"`
	Subregion string   `json:"subregion"`
	Region    string   `json:"region"`
	Timezones []string `json:"timezones"`
	Population int64   `json:"population"`
	Area      float64  `json:"area"`
	IDD       struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
	Car struct {
		Side string `json:"side"`
	} `json:"car"`
	StartOfWeek string                           `json:"startOfWeek"`
	Currencies  map[string]domain.CurrencyInfo   `json:"currencies"`
	Languages   map[string]string                `json:"languages"`
	Borders     []string                         `json:"borders"`
	Capital     []string                         `json:"capital"`
	CapitalInfo struct {
		LatLng []float64 `json:"latlng"`
	} `json:"capitalInfo"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
}

// Facts fetches and maps the immutable country metadata for code.
func (c *Countries) Facts(ctx context.Context, code string) (domain.Facts, error) {
	country, err := c.lookup(ctx, code)
	if err != nil {
		return domain.Facts{}, fmt.Errorf("provider.Countries.Facts: %w", err)
	}

	facts := domain.Facts{
		OfficialName: country.Name.Official,
		Region:       country.Subregion,
		Population:   country.Population,
		Area:         country.Area,
		Continent:    country.Region,
		DrivingSide:  titleCase(country.Car.Side),
		WeekStart:    titleCase(country.StartOfWeek),
		Currencies:   country.Currencies,
		Languages:    country.Languages,
		Neighbors:    country.Borders,
	}
	if len(country.Timezones) > 0 {
		facts.TimeZone = country.Timezones[0]
	}
	if len(country.IDD.Suffixes) > 0 {
		facts.CallingCode = country.IDD.Root + country.IDD.Suffixes[0]
	} else {
		facts.CallingCode = country.IDD.Root
	}
	if len(country.CapitalInfo.LatLng) >= 2 {
		facts.Latitude = country.CapitalInfo.LatLng[0]
		facts.Longitude = country.CapitalInfo.LatLng[1]
	}
	return facts, nil
}

// Summary fetches the identity needed to build a destination session:
// common name, capital list, code, and flag image. Used for both direct
// selection and neighbor selection by code.
func (c *Countries) Summary(ctx context.Context, code string) (domain.CountrySummary, error) {
	country, err := c.lookup(ctx, code)
	if err != nil {
		return domain.CountrySummary{}, fmt.Errorf("provider.Countries.Summary: %w", err)
	}
	return domain.CountrySummary{
		Name:     country.Name.Common,
		Capitals: country.Capital,
		Code:     country.CCA2,
		Flag:     country.Flags.PNG,
	}, nil
}

// lookup hits /alpha/{code}, which answers with a one-element array.
func (c *Countries) lookup(ctx context.Context, code string) (restCountry, error) {
	u := fmt.Sprintf("%s/alpha/%s", c.BaseURL, url.PathEscape(code))

	var countries []restCountry
	if err := getJSON(ctx, c.HTTPClient, u, &countries); err != nil {
		return restCountry{}, err
	}
	if len(countries) == 0 {
		return restCountry{}, fmt.Errorf("empty response for code %q", code)
	}
	return countries[0], nil
}
