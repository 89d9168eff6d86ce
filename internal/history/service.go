package history

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Run is one completed extraction: the table plus its per-day diagnostics.
type Run struct {
	ID          string      `json:"run_id"`
	Location    string      `json:"location"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	CompletedAt time.Time   `json:"completed_at"`
	Table       Table       `json:"table"`
	Diagnostics []DayResult `json:"diagnostics"`
}

// RunStore is the contract the in-memory store (and any future persistent
// store) must satisfy for keeping completed runs.
type RunStore interface {
	SaveRun(location string, run Run)
	GetLatest(location string) (Run, error)
}

// LocationResolver turns a free-form city/country pair into a query string
// the provider accepts (typically "lat,lon").
type LocationResolver interface {
	Resolve(city, country string) (string, error)
}

// ExtractRequest carries the caller-supplied parameters of one run. Country
// is optional and only used for geocoding.
type ExtractRequest struct {
	Location  string
	Country   string
	StartDate string
	EndDate   string
	Frequency int
	Verbose   bool
}

// Service orchestrates extraction runs and keeps completed ones in the store.
type Service struct {
	fetcher   HistoryFetcher
	store     RunStore
	resolver  LocationResolver
	apiKey    string
	outputDir string
}

// NewService creates a new Service. resolver may be nil when geocoding is
// not configured; outputDir may be empty when runs should not be persisted.
func NewService(fetcher HistoryFetcher, store RunStore, resolver LocationResolver, apiKey, outputDir string) *Service {
	return &Service{
		fetcher:   fetcher,
		store:     store,
		resolver:  resolver,
		apiKey:    apiKey,
		outputDir: outputDir,
	}
}

// Extract runs one extraction end to end and records the completed run.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (Run, error) {
	params := Params{
		APIKey:    s.apiKey,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Frequency: req.Frequency,
		Verbose:   req.Verbose,
		OutputDir: s.outputDir,
	}

	if req.Country != "" && s.resolver != nil {
		q, err := s.resolver.Resolve(req.Location, req.Country)
		if err != nil {
			// Geocoding is best-effort; fall back to the raw location query.
			log.Printf("geocoding failed for %s, %s: %v", req.Location, req.Country, err)
		} else {
			params.Query = q
		}
	}

	extractor, err := NewExtractor(s.fetcher, params)
	if err != nil {
		return Run{}, err
	}

	table, diagnostics, err := extractor.Retrieve(ctx)
	if err != nil {
		return Run{}, fmt.Errorf("extraction failed for %s: %w", req.Location, err)
	}

	run := Run{
		ID:          extractor.RunID(),
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CompletedAt: time.Now().UTC(),
		Table:       table,
		Diagnostics: diagnostics,
	}

	if s.store != nil {
		s.store.SaveRun(req.Location, run)
	}
	return run, nil
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(location string) (Run, error) {
	return s.store.GetLatest(location)
}
