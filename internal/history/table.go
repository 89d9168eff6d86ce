package history

import (
	"encoding/csv"
	"io"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05"

// Row is one flattened observation: the hourly sample's fields plus the
// day-level summary and astronomy fields replicated from its parent day.
// Values keep the provider's string representation.
type Row struct {
	DateTime time.Time `json:"date_time"`

	MaxTempC    string `json:"maxtempC"`
	MinTempC    string `json:"mintempC"`
	TotalSnowCM string `json:"totalSnow_cm"`
	SunHour     string `json:"sunHour"`
	UVIndex     string `json:"uvIndex"`

	MoonIllumination string `json:"moon_illumination"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`

	DewPointC     string `json:"DewPointC"`
	FeelsLikeC    string `json:"FeelsLikeC"`
	HeatIndexC    string `json:"HeatIndexC"`
	WindChillC    string `json:"WindChillC"`
	WindGustKmph  string `json:"WindGustKmph"`
	CloudCover    string `json:"cloudcover"`
	Humidity      string `json:"humidity"`
	PrecipMM      string `json:"precipMM"`
	Pressure      string `json:"pressure"`
	TempC         string `json:"tempC"`
	Visibility    string `json:"visibility"`
	WindDirDegree string `json:"winddirDegree"`
	WindSpeedKmph string `json:"windspeedKmph"`

	City string `json:"city"`
}

// Table is the timestamp-keyed result of a run: rows across all chunks in
// chunk order, each tagged with the requested location.
type Table struct {
	Rows []Row `json:"rows"`
}

// csvHeader is the persisted column order: the timestamp index leads and the
// location tag trails the weather columns.
var csvHeader = []string{
	"date_time",
	"maxtempC", "mintempC", "totalSnow_cm", "sunHour", "uvIndex",
	"moon_illumination", "moonrise", "moonset", "sunrise", "sunset",
	"DewPointC", "FeelsLikeC", "HeatIndexC", "WindChillC", "WindGustKmph",
	"cloudcover", "humidity", "precipMM", "pressure", "tempC", "visibility",
	"winddirDegree", "windspeedKmph",
	"city",
}

func (r Row) record() []string {
	return []string{
		r.DateTime.Format(timestampFormat),
		r.MaxTempC, r.MinTempC, r.TotalSnowCM, r.SunHour, r.UVIndex,
		r.MoonIllumination, r.Moonrise, r.Moonset, r.Sunrise, r.Sunset,
		r.DewPointC, r.FeelsLikeC, r.HeatIndexC, r.WindChillC, r.WindGustKmph,
		r.CloudCover, r.Humidity, r.PrecipMM, r.Pressure, r.TempC, r.Visibility,
		r.WindDirDegree, r.WindSpeedKmph,
		r.City,
	}
}

// WriteCSV serializes the table with a header row and the timestamp as the
// leading column, mirroring the in-memory schema exactly.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
