package domain

// RateTable maps currency codes to their rate against a base code, plus the
// provider's last-updated timestamp.
type RateTable struct {
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	LastUpdated     string             `json:"last_updated"`
}

// Conversion is the result of converting a concrete amount between two
// currencies.
type Conversion struct {
	BaseCode       string  `json:"base_code"`
	TargetCode     string  `json:"target_code"`
	ConversionRate float64 `json:"conversion_rate"`
	Result         float64 `json:"conversion_result"`
}
