package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WWOAPIKey authenticates against the WorldWeatherOnline API.
	WWOAPIKey string

	// GeocoderAPIKey is optional; when set, city/country pairs are resolved
	// to coordinates before querying the provider.
	GeocoderAPIKey string

	// HTTPTimeout bounds each outbound provider call. There is no retry.
	HTTPTimeout time.Duration

	// OutputDir, when set, is where run CSV artifacts are written.
	OutputDir string

	// In-memory run store retention.
	StoreMaxHistory int           // max number of runs per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of runs (0 = unlimited)

	Port string

	// Job holds one-shot extraction parameters; nil means serve the API.
	Job *JobConfig
}

// JobConfig describes a single extraction run driven from the environment.
type JobConfig struct {
	Location  string
	Country   string
	StartDate string
	EndDate   string
	Frequency int
	Verbose   bool
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WWOAPIKey = os.Getenv("WWO_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.OutputDir = os.Getenv("OUTPUT_DIR")

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 16)

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge
	cfg.Port = getenvDefault("PORT", "8080")

	job, err := loadJob()
	if err != nil {
		return nil, err
	}
	cfg.Job = job

	return cfg, nil
}

// loadJob reads one-shot extraction parameters; it returns nil when none of
// them are set, and an error when only some are.
func loadJob() (*JobConfig, error) {
	loc := os.Getenv("EXTRACT_LOCATION")
	start := os.Getenv("EXTRACT_START")
	end := os.Getenv("EXTRACT_END")

	if loc == "" && start == "" && end == "" {
		return nil, nil
	}
	if loc == "" || start == "" || end == "" {
		return nil, fmt.Errorf("EXTRACT_LOCATION, EXTRACT_START and EXTRACT_END must be set together")
	}

	return &JobConfig{
		Location:  loc,
		Country:   os.Getenv("EXTRACT_COUNTRY"),
		StartDate: start,
		EndDate:   end,
		Frequency: getenvInt("EXTRACT_FREQUENCY", 1),
		Verbose:   getenvDefault("EXTRACT_VERBOSE", "true") == "true",
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
