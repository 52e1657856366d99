// Package provider contains the HTTP clients for the external data services:
// country metadata, public holidays and long weekends, ticketed events,
// weather forecasts, sun times, and currency rates. Each service has its own
// file with a client struct whose BaseURL can be pointed at a test server.
// No caching or session logic lives here; only transport and type mapping.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// getJSON performs a GET and decodes the JSON body into dst. Non-2xx
// statuses and decode failures are errors; there are no retries.
func getJSON(ctx context.Context, client *http.Client, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// titleCase turns provider enum strings like "left" or "monday" (and
// hyphenated ones) into display form: "Left", "Monday".
func titleCase(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
