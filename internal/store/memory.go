package store

import (
	"errors"
	"sync"
	"time"

	"github.com/avolkoff/historical-weather/internal/history"
)

var (
	// ErrNotFound is returned when no completed run exists for a location.
	ErrNotFound = errors.New("no extraction run for location")
)

// RunHistory holds a time-ordered list of completed runs for a location.
type RunHistory struct {
	Runs []history.Run
}

// MemoryStore is a concurrency-safe in-memory store of completed extraction
// runs, keyed by location.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location, value: completed runs in completion order
	data map[string]*RunHistory

	// retention configuration
	maxHistory int           // max number of runs per location
	maxAge     time.Duration // optional max age for runs
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*RunHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveRun appends a completed run for a location and enforces retention.
func (s *MemoryStore) SaveRun(location string, run history.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hist, ok := s.data[location]
	if !ok {
		hist = &RunHistory{}
		s.data[location] = hist
	}

	hist.Runs = append(hist.Runs, run)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(hist.Runs) > s.maxHistory {
		over := len(hist.Runs) - s.maxHistory
		hist.Runs = hist.Runs[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(hist.Runs); i++ {
			if !hist.Runs[i].CompletedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(hist.Runs) {
			hist.Runs = hist.Runs[i:]
		}
	}
}

// GetLatest returns the most recently completed run for a location.
func (s *MemoryStore) GetLatest(location string) (history.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hist, ok := s.data[location]
	if !ok || len(hist.Runs) == 0 {
		return history.Run{}, ErrNotFound
	}
	return hist.Runs[len(hist.Runs)-1], nil
}
