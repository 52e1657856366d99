package domain

// Holiday is one public holiday record as returned by the holiday provider.
// Date is kept as the provider's "YYYY-MM-DD" string because it doubles as
// half of the holiday plan-equality key and must round-trip unmodified.
type Holiday struct {
	Date      string   `json:"date"`
	Name      string   `json:"name"`
	LocalName string   `json:"localName"`
	Types     []string `json:"types,omitempty"`
}

// LongWeekend is a stretch of consecutive days off around a public holiday.
type LongWeekend struct {
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	DayCount      int    `json:"dayCount"`
	NeedBridgeDay bool   `json:"needBridgeDay"`
}
