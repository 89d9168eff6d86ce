package history

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/avolkoff/historical-weather/internal/wwo"
)

// HistoryFetcher abstracts the provider client (WorldWeatherOnline in
// production, fakes in tests).
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, q string, start, end time.Time, frequency int) ([]wwo.DayRecord, error)
}

// Extractor drives one extraction run: month chunk -> fetch -> flatten ->
// append, strictly sequentially. A transport or decode error on any chunk
// aborts the whole run; structural problems inside a single day are skipped
// and reported as diagnostics instead.
type Extractor struct {
	fetcher HistoryFetcher
	params  Params
	runID   string
}

// NewExtractor validates params and returns a ready extractor. Validation
// failures surface here, before any network activity.
func NewExtractor(fetcher HistoryFetcher, params Params) (*Extractor, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("history fetcher is required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{
		fetcher: fetcher,
		params:  params,
		runID:   uuid.NewString(),
	}, nil
}

// RunID identifies this extraction run in logs and API responses.
func (e *Extractor) RunID() string {
	return e.runID
}

// Retrieve fetches and flattens the full date range. It always returns the
// in-memory table and the per-day diagnostics; when OutputDir is set the
// table is also persisted as <OutputDir>/<location>.csv with an identical
// schema.
func (e *Extractor) Retrieve(ctx context.Context) (Table, []DayResult, error) {
	start, end, err := e.params.dates()
	if err != nil {
		return Table{}, nil, err
	}

	var (
		table       Table
		diagnostics []DayResult
	)

	for _, chunk := range monthChunks(start, end) {
		if e.params.Verbose {
			log.Printf("run %s: retrieving data for %s from %s to %s",
				e.runID, e.params.Location,
				chunk.start.Format(dateFormat), chunk.end.Format(dateFormat))
		}

		days, err := e.fetcher.FetchHistory(ctx, e.params.query(), chunk.start, chunk.end, e.params.Frequency)
		if err != nil {
			return Table{}, nil, fmt.Errorf("fetch %s to %s: %w",
				chunk.start.Format(dateFormat), chunk.end.Format(dateFormat), err)
		}

		for _, day := range days {
			rows, result := flattenDay(day)
			if result.Skipped {
				log.Printf("run %s: skipping day %q: %s", e.runID, result.Date, result.Reason)
			}
			diagnostics = append(diagnostics, result)

			for _, row := range rows {
				row.City = e.params.Location
				table.Rows = append(table.Rows, row)
			}
		}
	}

	if e.params.OutputDir != "" {
		path, err := e.persist(table)
		if err != nil {
			return Table{}, nil, err
		}
		if e.params.Verbose {
			log.Printf("run %s: data saved to %s", e.runID, path)
		}
	}

	return table, diagnostics, nil
}

func (e *Extractor) persist(table Table) (string, error) {
	path := filepath.Join(e.params.OutputDir, e.params.Location+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := table.WriteCSV(f); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
