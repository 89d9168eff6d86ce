package wwo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const dateFormat = "2006-01-02"

var (
	// ErrMissingWeatherKey is returned when the response body parses as JSON
	// but does not contain the data.weather list.
	ErrMissingWeatherKey = errors.New("response missing data.weather")

	errNoHTTPClient = errors.New("http client not configured")
)

// Client fetches historical observations from the WorldWeatherOnline
// past-weather endpoint. Requests are not retried; the caller's http.Client
// timeout is the only bounded-wait behaviour.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    "http://api.worldweatheronline.com/premium/v1/past-weather.ashx",
	}
}

// FetchHistory requests one contiguous date range for a single location and
// returns the per-day records. q is whatever the provider accepts as a
// location query: a city name, a postal code, or "lat,lon".
func (c *Client) FetchHistory(ctx context.Context, q string, start, end time.Time, frequency int) ([]DayRecord, error) {
	if c.httpClient == nil {
		return nil, errNoHTTPClient
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("worldweatheronline api key is not configured")
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", q)
	values.Set("format", "json")
	values.Set("date", start.Format(dateFormat))
	values.Set("enddate", end.Format(dateFormat))
	values.Set("tp", strconv.Itoa(frequency))

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Error []struct {
				Msg string `json:"msg"`
			} `json:"error"`
			Weather []DayRecord `json:"weather"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// The provider reports request-level failures as data.error with a 200.
	if len(payload.Data.Error) > 0 {
		return nil, fmt.Errorf("provider error: %s", payload.Data.Error[0].Msg)
	}
	if payload.Data.Weather == nil {
		return nil, ErrMissingWeatherKey
	}

	return payload.Data.Weather, nil
}
