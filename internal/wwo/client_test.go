package wwo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleBody = `{
  "data": {
    "weather": [
      {
        "date": "2020-01-01",
        "maxtempC": "8",
        "mintempC": "2",
        "totalSnow_cm": "0.0",
        "sunHour": "5.5",
        "uvIndex": "2",
        "astronomy": [
          {"sunrise": "08:44 AM", "sunset": "05:03 PM", "moonrise": "11:15 AM", "moonset": "11:07 PM", "moon_illumination": "34"}
        ],
        "hourly": [
          {"time": "0", "tempC": "3", "humidity": "87", "pressure": "1032", "windspeedKmph": "8"},
          {"time": "1200", "tempC": "7", "humidity": "70", "pressure": "1030", "windspeedKmph": "11"}
        ]
      }
    ]
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		httpClient: srv.Client(),
		apiKey:     "test-key",
		baseURL:    srv.URL,
	}
}

func TestFetchHistoryDecodesDayRecords(t *testing.T) {
	var gotQuery map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"key":     r.URL.Query().Get("key"),
			"q":       r.URL.Query().Get("q"),
			"format":  r.URL.Query().Get("format"),
			"date":    r.URL.Query().Get("date"),
			"enddate": r.URL.Query().Get("enddate"),
			"tp":      r.URL.Query().Get("tp"),
		}
		w.Write([]byte(sampleBody))
	})

	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC)

	days, err := c.FetchHistory(context.Background(), "Paris", start, end, 12)
	if err != nil {
		t.Fatalf("FetchHistory failed: %v", err)
	}

	want := map[string]string{
		"key": "test-key", "q": "Paris", "format": "json",
		"date": "2020-01-01", "enddate": "2020-01-31", "tp": "12",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s: got %q want %q", k, gotQuery[k], v)
		}
	}

	if len(days) != 1 {
		t.Fatalf("expected 1 day record, got %d", len(days))
	}
	day := days[0]
	if day.Date != "2020-01-01" || day.MaxTempC != "8" {
		t.Errorf("unexpected day summary: %+v", day)
	}
	if len(day.Astronomy) != 1 || day.Astronomy[0].MoonIllumination != "34" {
		t.Errorf("unexpected astronomy: %+v", day.Astronomy)
	}
	if len(day.Hourly) != 2 || day.Hourly[1].Time != "1200" || day.Hourly[1].TempC != "7" {
		t.Errorf("unexpected hourly samples: %+v", day.Hourly)
	}
}

func TestFetchHistoryMissingWeatherKey(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	})

	_, err := c.FetchHistory(context.Background(), "Paris", time.Now(), time.Now(), 1)
	if !errors.Is(err, ErrMissingWeatherKey) {
		t.Fatalf("expected ErrMissingWeatherKey, got %v", err)
	}
}

func TestFetchHistoryProviderError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"error": [{"msg": "api key has reached calls per day allowed limit"}]}}`))
	})

	_, err := c.FetchHistory(context.Background(), "Paris", time.Now(), time.Now(), 1)
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestFetchHistoryMalformedJSON(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": `))
	})

	_, err := c.FetchHistory(context.Background(), "Paris", time.Now(), time.Now(), 1)
	if err == nil {
		t.Fatal("expected decode error to surface")
	}
}

func TestFetchHistoryUnexpectedStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.FetchHistory(context.Background(), "Paris", time.Now(), time.Now(), 1)
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestFetchHistoryMissingAPIKey(t *testing.T) {
	c := NewClient(http.DefaultClient, "")
	_, err := c.FetchHistory(context.Background(), "Paris", time.Now(), time.Now(), 1)
	if err == nil {
		t.Fatal("expected error when api key is not configured")
	}
}
