package domain

// Event is one ticketed event in the selected city, as returned by the
// event provider. Field names mirror the provider payload so saved plan
// records stay byte-comparable with fresh fetches.
type Event struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	URL    string       `json:"url,omitempty"`
	Images []EventImage `json:"images,omitempty"`
	Dates  EventDates   `json:"dates"`
	Venues []Venue      `json:"venues,omitempty"`
}

// EventImage is a promotional image reference.
type EventImage struct {
	URL string `json:"url"`
}

// EventDates carries the start instant of the event.
type EventDates struct {
	Start EventStart `json:"start"`
}

// EventStart holds the event's scheduled start as an RFC 3339 string.
type EventStart struct {
	DateTime string `json:"dateTime"`
}

// Venue is where an event takes place.
type Venue struct {
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}
