package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WWO_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WWOAPIKey != "test-key" {
		t.Errorf("expected api key from env, got %q", cfg.WWOAPIKey)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.HTTPTimeout)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Job != nil {
		t.Errorf("expected no job without EXTRACT_* vars, got %+v", cfg.Job)
	}
}

func TestLoadJob(t *testing.T) {
	t.Setenv("WWO_API_KEY", "test-key")
	t.Setenv("EXTRACT_LOCATION", "Paris")
	t.Setenv("EXTRACT_START", "2020-01-01")
	t.Setenv("EXTRACT_END", "2020-02-29")
	t.Setenv("EXTRACT_FREQUENCY", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Job == nil {
		t.Fatal("expected job config")
	}
	if cfg.Job.Location != "Paris" || cfg.Job.Frequency != 6 {
		t.Errorf("unexpected job config: %+v", cfg.Job)
	}
}

func TestLoadJobIncomplete(t *testing.T) {
	t.Setenv("EXTRACT_LOCATION", "Paris")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for partial EXTRACT_* configuration")
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid HTTP_TIMEOUT")
	}
}
