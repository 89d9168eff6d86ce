package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avolkoff/historical-weather/internal/wwo"
)

// DayResult is the explicit per-day outcome of flattening: either a row
// count, or skipped with a reason. Skipped days never abort a run; they are
// collected as run-level diagnostics.
type DayResult struct {
	Date    string `json:"date"`
	Rows    int    `json:"rows"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}

func skipDay(date, reason string) DayResult {
	return DayResult{Date: date, Skipped: true, Reason: reason}
}

// flattenDay converts one day record into one row per hourly sample.
// Day-summary and astronomy fields are replicated across all of the day's
// rows; when astronomy has fewer entries than hourly, its last entry is
// forward-filled (the upstream data nearly always has exactly one).
func flattenDay(rec wwo.DayRecord) ([]Row, DayResult) {
	if rec.Date == "" {
		return nil, skipDay("", "day record missing date")
	}
	if len(rec.Hourly) == 0 {
		return nil, skipDay(rec.Date, "day record has no hourly samples")
	}

	day, err := time.Parse(dateFormat, rec.Date)
	if err != nil {
		return nil, skipDay(rec.Date, fmt.Sprintf("unparseable date: %v", err))
	}

	rows := make([]Row, 0, len(rec.Hourly))
	for i, h := range rec.Hourly {
		if h.Time == "" {
			return nil, skipDay(rec.Date, fmt.Sprintf("hourly sample %d missing time code", i))
		}

		hour, err := hourFromTimeCode(h.Time)
		if err != nil {
			return nil, skipDay(rec.Date, fmt.Sprintf("hourly sample %d: %v", i, err))
		}

		astro := astronomyAt(rec.Astronomy, i)

		rows = append(rows, Row{
			DateTime: time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()),

			MaxTempC:    rec.MaxTempC,
			MinTempC:    rec.MinTempC,
			TotalSnowCM: rec.TotalSnowCM,
			SunHour:     rec.SunHour,
			UVIndex:     rec.UVIndex,

			MoonIllumination: astro.MoonIllumination,
			Moonrise:         astro.Moonrise,
			Moonset:          astro.Moonset,
			Sunrise:          astro.Sunrise,
			Sunset:           astro.Sunset,

			DewPointC:     h.DewPointC,
			FeelsLikeC:    h.FeelsLikeC,
			HeatIndexC:    h.HeatIndexC,
			WindChillC:    h.WindChillC,
			WindGustKmph:  h.WindGustKmph,
			CloudCover:    h.CloudCover,
			Humidity:      h.Humidity,
			PrecipMM:      h.PrecipMM,
			Pressure:      h.Pressure,
			TempC:         h.TempC,
			Visibility:    h.Visibility,
			WindDirDegree: h.WindDirDegree,
			WindSpeedKmph: h.WindSpeedKmph,
		})
	}

	return rows, DayResult{Date: rec.Date, Rows: len(rows)}
}

// astronomyAt forward-fills astronomy entries against the hourly index:
// entry i where one exists, otherwise the last available entry. Whether the
// upstream ever sends more than one entry per day is unclear; the fill
// preserves its behaviour either way.
func astronomyAt(astro []wwo.Astronomy, i int) wwo.Astronomy {
	if len(astro) == 0 {
		return wwo.Astronomy{}
	}
	if i < len(astro) {
		return astro[i]
	}
	return astro[len(astro)-1]
}

// hourFromTimeCode normalizes the provider's 0-2400 time-of-day code to an
// hour: left-pad to four digits, keep the leading two ("0" -> 00,
// "300" -> 03, "2300" -> 23).
func hourFromTimeCode(code string) (int, error) {
	if len(code) > 4 {
		return 0, fmt.Errorf("invalid time code %q", code)
	}
	padded := strings.Repeat("0", 4-len(code)) + code

	hour, err := strconv.Atoi(padded[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid time code %q", code)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("time code %q out of range", code)
	}
	return hour, nil
}
