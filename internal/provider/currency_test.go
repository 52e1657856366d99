package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderdash/backend/internal/provider"
)

func newCurrencyServer(t *testing.T, routes map[string]string) (*provider.Currency, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &provider.Currency{BaseURL: srv.URL, APIKey: "test-key", HTTPClient: srv.Client()}, &gotPath
}

func TestCurrency_Latest(t *testing.T) {
	c, gotPath := newCurrencyServer(t, map[string]string{
		"/test-key/latest/EGP": `{
			"result": "success",
			"base_code": "EGP",
			"conversion_rates": {"EGP": 1, "USD": 0.021, "EUR": 0.019},
			"time_last_update_utc": "Sun, 15 Jun 2025 00:00:01 +0000"
		}`,
	})

	table, err := c.Latest(context.Background(), "EGP")
	require.NoError(t, err)

	assert.Equal(t, "/test-key/latest/EGP", *gotPath)
	assert.Equal(t, "EGP", table.BaseCode)
	assert.Equal(t, 0.021, table.ConversionRates["USD"])
	assert.Equal(t, "Sun, 15 Jun 2025 00:00:01 +0000", table.LastUpdated)
}

func TestCurrency_Convert(t *testing.T) {
	c, gotPath := newCurrencyServer(t, map[string]string{
		"/test-key/pair/EGP/USD/100": `{
			"result": "success",
			"base_code": "EGP",
			"target_code": "USD",
			"conversion_rate": 0.021,
			"conversion_result": 2.1
		}`,
	})

	conv, err := c.Convert(context.Background(), "EGP", "USD", 100)
	require.NoError(t, err)

	assert.Equal(t, "/test-key/pair/EGP/USD/100", *gotPath)
	assert.Equal(t, "EGP", conv.BaseCode)
	assert.Equal(t, "USD", conv.TargetCode)
	assert.Equal(t, 0.021, conv.ConversionRate)
	assert.Equal(t, 2.1, conv.Result)
}

func TestCurrency_ErrorResult(t *testing.T) {
	c, _ := newCurrencyServer(t, map[string]string{
		"/test-key/latest/XXX": `{"result": "error", "error-type": "unsupported-code"}`,
	})

	_, err := c.Latest(context.Background(), "XXX")
	assert.ErrorContains(t, err, `result "error"`)
}
