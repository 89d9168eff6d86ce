package history

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateFormat = "2006-01-02"

var validate = validator.New()

// Params describes one extraction run: a single location, a date range, and
// the hourly sampling frequency offered by the provider.
type Params struct {
	APIKey    string `validate:"required"`
	Location  string `validate:"required"`
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`

	// Frequency is the gap between hourly samples, in hours.
	Frequency int `validate:"required,oneof=1 3 6 12"`

	// Query overrides the string sent to the provider as the location query
	// (e.g. "48.85,2.35" after geocoding). Rows are still tagged with
	// Location. Empty means Location is used as-is.
	Query string

	Verbose bool

	// OutputDir, when set, is where the run's CSV artifact is written.
	OutputDir string
}

// Validate fails fast on malformed parameters before any network activity.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	start, end, err := p.dates()
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fmt.Errorf("end date %s must be after start date %s", p.EndDate, p.StartDate)
	}
	return nil
}

func (p Params) dates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateFormat, p.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(dateFormat, p.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	return start, end, nil
}

func (p Params) query() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Location
}
