package wwo

// WorldWeatherOnline serializes every numeric field as a string, so the
// schema below keeps string types and leaves interpretation to callers.

// Astronomy holds the sun/moon fields reported once per day.
type Astronomy struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

// HourlyObservation is one intra-day sample. Time is the provider's
// 0-2400 time-of-day code (e.g. "0", "300", "2300").
type HourlyObservation struct {
	Time          string `json:"time"`
	TempC         string `json:"tempC"`
	WindSpeedKmph string `json:"windspeedKmph"`
	WindDirDegree string `json:"winddirDegree"`
	WindGustKmph  string `json:"WindGustKmph"`
	WeatherCode   string `json:"weatherCode"`
	PrecipMM      string `json:"precipMM"`
	Humidity      string `json:"humidity"`
	Visibility    string `json:"visibility"`
	Pressure      string `json:"pressure"`
	CloudCover    string `json:"cloudcover"`
	HeatIndexC    string `json:"HeatIndexC"`
	DewPointC     string `json:"DewPointC"`
	WindChillC    string `json:"WindChillC"`
	FeelsLikeC    string `json:"FeelsLikeC"`
}

// DayRecord is the provider's structure for one calendar day: day-level
// summary fields plus astronomy and hourly sub-records. Fields missing from
// the response decode to their zero values rather than failing.
type DayRecord struct {
	Date        string              `json:"date"`
	MaxTempC    string              `json:"maxtempC"`
	MinTempC    string              `json:"mintempC"`
	TotalSnowCM string              `json:"totalSnow_cm"`
	SunHour     string              `json:"sunHour"`
	UVIndex     string              `json:"uvIndex"`
	Astronomy   []Astronomy         `json:"astronomy"`
	Hourly      []HourlyObservation `json:"hourly"`
}
