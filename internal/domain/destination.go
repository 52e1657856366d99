// Package domain contains the core data types for the Wanderdash backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (session, plan, provider, storage, handler).
package domain

import "fmt"

// Section identifies one of the six kinds of destination data a user can
// browse for the currently explored country/city/year.
type Section string

const (
	SectionHolidays     Section = "holidays"
	SectionEvents       Section = "events"
	SectionWeather      Section = "weather"
	SectionLongWeekends Section = "long-weekends"
	SectionSunTimes     Section = "sun-times"
	SectionCurrency     Section = "currency"
)

// Sections lists every valid section, in the order the UI presents them.
var Sections = []Section{
	SectionHolidays,
	SectionEvents,
	SectionWeather,
	SectionLongWeekends,
	SectionSunTimes,
	SectionCurrency,
}

// ParseSection validates a section name from an untrusted source (URL path).
// Returns ErrValidation for anything outside the known six.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if Section(s) == sec {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: unknown section %q", ErrValidation, s)
}

// CityScopedSections are the cached sections implicitly keyed by city.
// Changing the selected city must evict exactly these.
func CityScopedSections() []Section {
	return []Section{SectionEvents, SectionWeather}
}

// YearScopedSections are the cached sections implicitly keyed by year.
// Changing the active year must evict exactly these.
func YearScopedSections() []Section {
	return []Section{SectionHolidays, SectionLongWeekends}
}

// CurrencyInfo describes one currency a country uses.
type CurrencyInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Coordinates is the capital's position, used by the weather and sun-times
// providers.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Facts holds the immutable country metadata fetched once per destination
// session. The zero value is "not yet loaded"; once loaded it is never
// mutated.
type Facts struct {
	OfficialName string                  `json:"official_name"`
	Region       string                  `json:"region"`
	TimeZone     string                  `json:"time_zone"` // "UTC±HH:MM", or "UTC"
	Population   int64                   `json:"population"`
	Area         float64                 `json:"area"`
	Continent    string                  `json:"continent"`
	CallingCode  string                  `json:"calling_code"`
	DrivingSide  string                  `json:"driving_side"`
	WeekStart    string                  `json:"week_start"`
	Currencies   map[string]CurrencyInfo `json:"currencies"`
	Languages    map[string]string       `json:"languages"`
	Neighbors    []string                `json:"neighbors,omitempty"`
	Latitude     float64                 `json:"latitude"`
	Longitude    float64                 `json:"longitude"`
}

// Coordinates returns the capital coordinate pair from the facts.
func (f Facts) Coordinates() Coordinates {
	return Coordinates{Latitude: f.Latitude, Longitude: f.Longitude}
}

// CountryOption is one entry in the country selector, as listed by the
// holiday provider's available-countries endpoint.
type CountryOption struct {
	Code string `json:"countryCode"`
	Name string `json:"name"`
}

// CountrySummary is the minimal identity needed to construct a destination
// session: display name, capital cities, ISO code, and flag image.
// Returned by the capital/city provider for both direct and neighbor
// selection.
type CountrySummary struct {
	Name     string   `json:"name"`
	Capitals []string `json:"capitals"`
	Code     string   `json:"code"`
	Flag     string   `json:"flag"`
}
