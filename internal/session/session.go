// Package session implements the destination session engine: the stateful
// object representing the currently explored country/city/year, its
// per-section cache with input-tied invalidation, the derived local wall
// clock, and the manager that owns the single live session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wanderdash/backend/internal/domain"
)

// FactsProvider fetches immutable country metadata by ISO code.
// The concrete implementation lives in the provider package.
type FactsProvider interface {
	Facts(ctx context.Context, code string) (domain.Facts, error)
}

// SectionProvider fetches one section's payload. The caller builds the
// closure over the session's current country/city/year, so the session
// itself stays provider-agnostic.
type SectionProvider func(ctx context.Context) (any, error)

// Session is the in-memory representation of the currently explored
// destination. Country and Code are fixed for the session's lifetime;
// CityName and Year are mutable and drive cache invalidation. A cleared
// session is terminal; construct a new one to resume.
type Session struct {
	mu sync.Mutex

	country  string
	cityName string
	code     string
	flag     string
	year     int

	facts     *domain.Facts
	cache     *SectionCache
	explored  bool
	countries FactsProvider
}

// New constructs a session for a freshly selected country.
func New(country, cityName, code, flag string, year int, countries FactsProvider) *Session {
	return &Session{
		country:   country,
		cityName:  cityName,
		code:      code,
		flag:      flag,
		year:      year,
		cache:     NewSectionCache(),
		countries: countries,
	}
}

// Identity accessors. Country and Code are immutable; CityName and Year
// change only through SetCity and SetYear so the eviction invariants hold.

func (s *Session) Country() string { s.mu.Lock(); defer s.mu.Unlock(); return s.country }
func (s *Session) Code() string    { s.mu.Lock(); defer s.mu.Unlock(); return s.code }
func (s *Session) Flag() string    { s.mu.Lock(); defer s.mu.Unlock(); return s.flag }
func (s *Session) CityName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cityName
}
func (s *Session) Year() int { s.mu.Lock(); defer s.mu.Unlock(); return s.year }

// SetCity changes the selected city and evicts exactly the city-keyed
// sections (events, weather). Other cached sections are untouched.
func (s *Session) SetCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cityName = city
	s.cache.Evict(domain.CityScopedSections()...)
}

// SetYear changes the active year and evicts exactly the year-keyed
// sections (holidays, long-weekends).
func (s *Session) SetYear(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.year = year
	s.cache.Evict(domain.YearScopedSections()...)
}

// LoadFacts returns the memoized country facts, fetching them at most once
// per session. On provider failure nothing is stored; facts are either
// fully set or still nil, never partial.
func (s *Session) LoadFacts(ctx context.Context) (domain.Facts, error) {
	s.mu.Lock()
	if s.facts != nil {
		facts := *s.facts
		s.mu.Unlock()
		return facts, nil
	}
	code := s.code
	s.mu.Unlock()

	facts, err := s.countries.Facts(ctx, code)
	if err != nil {
		return domain.Facts{}, &domain.FetchError{Category: "facts", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.facts == nil {
		s.facts = &facts
	}
	return *s.facts, nil
}

// Facts returns the already-loaded facts without triggering a fetch.
func (s *Session) Facts() (domain.Facts, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.facts == nil {
		return domain.Facts{}, false
	}
	return *s.facts, true
}

// Coordinates returns the capital coordinates. When facts are already
// loaded it reads them; otherwise it performs the same provider fetch but
// returns only the coordinate pair without memoizing; a read-only peek
// used before the session is fully explored.
func (s *Session) Coordinates(ctx context.Context) (domain.Coordinates, error) {
	s.mu.Lock()
	if s.facts != nil {
		coords := s.facts.Coordinates()
		s.mu.Unlock()
		return coords, nil
	}
	code := s.code
	s.mu.Unlock()

	facts, err := s.countries.Facts(ctx, code)
	if err != nil {
		return domain.Coordinates{}, &domain.FetchError{Category: "coordinates", Err: err}
	}
	return facts.Coordinates(), nil
}

// LocalTime computes the destination's wall time at the given instant from
// the facts' UTC offset string. Pure given a fixed now; a missing or garbled
// offset degrades to UTC rather than failing.
func (s *Session) LocalTime(now time.Time) string {
	s.mu.Lock()
	tz := ""
	if s.facts != nil {
		tz = s.facts.TimeZone
	}
	s.mu.Unlock()
	return wallClock(now, parseUTCOffset(tz))
}

// TimeZone returns the facts' raw offset string, or "" before facts load.
func (s *Session) TimeZone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.facts == nil {
		return ""
	}
	return s.facts.TimeZone
}

// FetchSection returns the cached payload for the section if present, else
// invokes the provider and stores the result before returning it. On failure
// nothing is stored and the error carries the section name.
//
// Two concurrent first fetches for one section are not deduplicated: both
// hit the provider and the later result wins the cache slot. Accepted
// simplification; payloads for one (country, city, year) are equivalent.
func (s *Session) FetchSection(ctx context.Context, section domain.Section, fetch SectionProvider) (any, error) {
	s.mu.Lock()
	if v, ok := s.cache.Get(section); ok {
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	v, err := fetch(ctx)
	if err != nil {
		return nil, &domain.FetchError{Category: string(section), Err: err}
	}

	s.mu.Lock()
	s.cache.Put(section, v)
	s.mu.Unlock()
	return v, nil
}

// CachedSection returns the cached payload without fetching.
func (s *Session) CachedSection(section domain.Section) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(section)
}

// Invalidate removes the named entries from the section cache.
func (s *Session) Invalidate(sections ...domain.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Evict(sections...)
}

// MarkExplored records that the full destination detail has been rendered.
// Re-exploring is a no-op state-wise.
func (s *Session) MarkExplored() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explored = true
}

// Explored reports whether the destination detail has been rendered at
// least once this session.
func (s *Session) Explored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explored
}

// Clear resets all identity fields, drops the cache and facts, and clears
// the explored flag. Terminal: the session cannot be reused afterwards.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.country = ""
	s.cityName = ""
	s.code = ""
	s.flag = ""
	s.year = 0
	s.facts = nil
	s.explored = false
	s.cache.clear()
}

// String identifies the session in logs.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%s/%s (%s, %d)", s.country, s.cityName, s.code, s.year)
}
