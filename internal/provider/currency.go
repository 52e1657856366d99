package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wanderdash/backend/internal/domain"
)

// DefaultCurrencyBaseURL is the ExchangeRate-API v6 endpoint. The API key is
// a path segment, appended by the client.
const DefaultCurrencyBaseURL = "https://v6.exchangerate-api.com/v6"

// Currency fetches exchange-rate tables and pair conversions.
type Currency struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewCurrency returns a client against the public API with the given key.
func NewCurrency(client *http.Client, apiKey string) *Currency {
	return &Currency{BaseURL: DefaultCurrencyBaseURL, APIKey: apiKey, HTTPClient: client}
}

type latestResponse struct {
	Result            string             `json:"result"`
	BaseCode          string             `json:"base_code"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

type pairResponse struct {
	Result           string  `json:"result"`
	BaseCode         string  `json:"base_code"`
	TargetCode       string  `json:"target_code"`
	ConversionRate   float64 `json:"conversion_rate"`
	ConversionResult float64 `json:"conversion_result"`
}

// Latest returns the full rate table against the base currency code.
func (c *Currency) Latest(ctx context.Context, base string) (domain.RateTable, error) {
	u := fmt.Sprintf("%s/%s/latest/%s", c.BaseURL, url.PathEscape(c.APIKey), url.PathEscape(base))

	var resp latestResponse
	if err := getJSON(ctx, c.HTTPClient, u, &resp); err != nil {
		return domain.RateTable{}, fmt.Errorf("provider.Currency.Latest: %w", err)
	}
	if resp.Result != "success" {
		return domain.RateTable{}, fmt.Errorf("provider.Currency.Latest: result %q", resp.Result)
	}
	return domain.RateTable{
		BaseCode:        resp.BaseCode,
		ConversionRates: resp.ConversionRates,
		LastUpdated:     resp.TimeLastUpdateUTC,
	}, nil
}

// Convert converts amount from one currency to another at the live rate.
func (c *Currency) Convert(ctx context.Context, from, to string, amount float64) (domain.Conversion, error) {
	u := fmt.Sprintf("%s/%s/pair/%s/%s/%s",
		c.BaseURL,
		url.PathEscape(c.APIKey),
		url.PathEscape(from),
		url.PathEscape(to),
		strconv.FormatFloat(amount, 'f', -1, 64),
	)

	var resp pairResponse
	if err := getJSON(ctx, c.HTTPClient, u, &resp); err != nil {
		return domain.Conversion{}, fmt.Errorf("provider.Currency.Convert: %w", err)
	}
	if resp.Result != "success" {
		return domain.Conversion{}, fmt.Errorf("provider.Currency.Convert: result %q", resp.Result)
	}
	return domain.Conversion{
		BaseCode:       resp.BaseCode,
		TargetCode:     resp.TargetCode,
		ConversionRate: resp.ConversionRate,
		Result:         resp.ConversionResult,
	}, nil
}
