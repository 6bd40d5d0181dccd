package types

import (
	"encoding/json"
	"math"
	"time"
)

// Temperature bounds for generated forecasts, in degrees Celsius.
const (
	MinTemperatureC = -20
	MaxTemperatureC = 54
)

// Summaries is the fixed vocabulary of forecast summary labels.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Forecast describes the synthetic weather conditions for a single day.
// The date carries no time component; the Fahrenheit temperature is derived
// on read and never stored.
type Forecast struct {
	Date         time.Time
	TemperatureC int
	Summary      *string
}

// TemperatureF converts the stored Celsius temperature using the 0.5556
// scale factor, rounding to the nearest degree (0C -> 32F, 10C -> 50F).
func (f Forecast) TemperatureF() int {
	return 32 + int(math.Round(float64(f.TemperatureC)/0.5556))
}

// forecastJSON is the wire shape of a Forecast. Summary serializes to null
// when absent.
type forecastJSON struct {
	Date         string  `json:"date"`
	TemperatureC int     `json:"temperatureC"`
	TemperatureF int     `json:"temperatureF"`
	Summary      *string `json:"summary"`
}

// MarshalJSON renders the date as YYYY-MM-DD and includes the derived
// Fahrenheit value.
func (f Forecast) MarshalJSON() ([]byte, error) {
	return json.Marshal(forecastJSON{
		Date:         f.Date.Format("2006-01-02"),
		TemperatureC: f.TemperatureC,
		TemperatureF: f.TemperatureF(),
		Summary:      f.Summary,
	})
}

// UnmarshalJSON parses the wire shape back into a Forecast. The serialized
// temperatureF is ignored since it is always derived from temperatureC.
func (f *Forecast) UnmarshalJSON(data []byte) error {
	var raw forecastJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.ParseInLocation("2006-01-02", raw.Date, time.UTC)
	if err != nil {
		return err
	}
	f.Date = date
	f.TemperatureC = raw.TemperatureC
	f.Summary = raw.Summary
	return nil
}

// SummaryRef returns a pointer to s, for populating the nullable Summary field.
func SummaryRef(s string) *string {
	return &s
}
