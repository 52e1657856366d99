package session

import "github.com/wanderdash/backend/internal/domain"

// SectionCache maps a section to the payload last fetched for the owning
// session's current (country, city, year). It never expires entries on its
// own; payloads are small and live only as long as the browsing session.
// Correctness lies entirely in when the owning session calls Evict.
type SectionCache struct {
	entries map[domain.Section]any
}

// NewSectionCache returns an empty cache.
func NewSectionCache() *SectionCache {
	return &SectionCache{entries: make(map[domain.Section]any)}
}

// Get returns the cached payload for the section, if any.
func (c *SectionCache) Get(section domain.Section) (any, bool) {
	v, ok := c.entries[section]
	return v, ok
}

// Put stores the payload for a section, replacing any previous entry.
func (c *SectionCache) Put(section domain.Section, payload any) {
	c.entries[section] = payload
}

// Evict removes the named entries. Missing entries are ignored.
func (c *SectionCache) Evict(sections ...domain.Section) {
	for _, s := range sections {
		delete(c.entries, s)
	}
}

// Len reports how many sections are currently cached.
func (c *SectionCache) Len() int { return len(c.entries) }

// clear drops every entry. Used when the session is cleared.
func (c *SectionCache) clear() {
	c.entries = make(map[domain.Section]any)
}
