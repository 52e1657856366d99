package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlanType names the kind of item a plan record bookmarks. Only holidays,
// events, and long weekends can be saved; weather, sun times, and currency
// are ephemeral views.
type PlanType string

const (
	PlanHolidays     PlanType = "holidays"
	PlanEvents       PlanType = "events"
	PlanLongWeekends PlanType = "longWeekends"
)

// ParsePlanType validates a plan type from an untrusted source.
func ParsePlanType(s string) (PlanType, error) {
	switch PlanType(s) {
	case PlanHolidays, PlanEvents, PlanLongWeekends:
		return PlanType(s), nil
	}
	return "", fmt.Errorf("%w: unknown plan type %q", ErrValidation, s)
}

// PlanRecord is one bookmarked item. Data is kept as the raw payload the
// caller saved, so fields beyond the equality key survive round-trips
// untouched. ID and SavedAt are assigned by the store on save; neither
// participates in equality.
type PlanRecord struct {
	ID      uuid.UUID       `json:"id"`
	Type    PlanType        `json:"type"`
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"saved_at"`
}

// Per-type equality keys. Each is the minimal projection of the payload that
// identifies a record: two payloads match iff their keys match, regardless of
// any other fields.
type holidayKey struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
}

type longWeekendKey struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type eventKey struct {
	ID string `json:"id"`
}

// planMatchers dispatches the equality rule by plan type. Adding a new
// bookmarkable type means adding one entry here, not touching call sites.
var planMatchers = map[PlanType]func(a, b json.RawMessage) bool{
	PlanHolidays: func(a, b json.RawMessage) bool {
		var ka, kb holidayKey
		return decodeBoth(a, b, &ka, &kb) && ka == kb
	},
	PlanLongWeekends: func(a, b json.RawMessage) bool {
		var ka, kb longWeekendKey
		return decodeBoth(a, b, &ka, &kb) && ka == kb
	},
	PlanEvents: func(a, b json.RawMessage) bool {
		var ka, kb eventKey
		return decodeBoth(a, b, &ka, &kb) && ka == kb
	},
}

// PlanDataMatches reports whether two payloads of the given type identify the
// same item under that type's equality rule. Unknown types never match.
func PlanDataMatches(typ PlanType, a, b json.RawMessage) bool {
	match, ok := planMatchers[typ]
	if !ok {
		return false
	}
	return match(a, b)
}

// decodeBoth unmarshals both payloads into their key projections.
// A payload that does not decode can never match anything.
func decodeBoth(a, b json.RawMessage, ka, kb any) bool {
	if err := json.Unmarshal(a, ka); err != nil {
		return false
	}
	if err := json.Unmarshal(b, kb); err != nil {
		return false
	}
	return true
}
