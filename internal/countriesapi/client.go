package countriesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// countryFields is the fixed field set requested from the remote catalog.
const countryFields = "iso2,currency,image,flag,capital,iso3,dialCode,name"

// CountryInfo is a single country as returned by the CountriesNow API,
// before a local identifier has been assigned.
type CountryInfo struct {
	Name     string `json:"name"`
	ISO2     string `json:"iso2"`
	ISO3     string `json:"iso3"`
	Currency string `json:"currency"`
	Flag     string `json:"flag"`
	Capital  string `json:"capital"`
	DialCode string `json:"dialCode"`
}

// Client fetches the country catalog from the CountriesNow API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a CountriesNow API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchAll requests the full country catalog with the fixed field set.
// A remote-reported error (error: true in the envelope) is returned as a
// regular error alongside network and decode failures.
func (c *Client) FetchAll(ctx context.Context) ([]CountryInfo, error) {
	url := fmt.Sprintf("%s/countries/info?returns=%s", c.baseURL, countryFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if envelope.Error {
		return nil, fmt.Errorf("remote error: %s", envelope.Msg)
	}

	return envelope.Data, nil
}

// apiResponse is the CountriesNow response envelope.
type apiResponse struct {
	Data  []CountryInfo `json:"data"`
	Error bool          `json:"error"`
	Msg   string        `json:"msg"`
}
