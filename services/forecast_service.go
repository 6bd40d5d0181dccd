// Package services contains the data capabilities the weather plugin
// registers with the host.
package services

import (
	"sync"

	"github.com/hostframe/weather-plugin/forecast"
	"github.com/hostframe/weather-plugin/types"
)

// ForecastServiceKey is the registry key the forecast service is registered
// under. Other host components resolve the capability by this key.
const ForecastServiceKey = "weather.forecast-service"

// DefaultForecastDays is the horizon used when a caller does not specify one.
const DefaultForecastDays = 5

// ForecastService is the forecast data capability shared through the host
// registry. Implementations must be safe for concurrent use: the host invokes
// them from parallel request handlers.
type ForecastService interface {
	// GetForecast returns a freshly generated sequence of days forecasts.
	// days is clamped into [1, forecast.MaxDays]; the call never fails.
	GetForecast(days int) ([]types.Forecast, error)

	// AddForecast appends f to the service's stored sequence and echoes it
	// back as an acknowledgement.
	AddForecast(f types.Forecast) types.Forecast
}

// ForecastDataService is the in-memory ForecastService implementation.
// Generation and storage are intentionally decoupled: GetForecast never reads
// the stored sequence, and AddForecast never influences generation.
type ForecastDataService struct {
	generator *forecast.Generator

	mu        sync.Mutex
	forecasts []types.Forecast
}

var _ ForecastService = (*ForecastDataService)(nil)

// NewForecastDataService creates a ForecastDataService drawing from gen.
func NewForecastDataService(gen *forecast.Generator) *ForecastDataService {
	return &ForecastDataService{generator: gen}
}

// GetForecast clamps days into [1, forecast.MaxDays] and generates a fresh
// sequence. Out-of-range values are clamped rather than rejected, so the
// call always succeeds.
func (s *ForecastDataService) GetForecast(days int) ([]types.Forecast, error) {
	if days < 1 {
		days = 1
	}
	if days > forecast.MaxDays {
		days = forecast.MaxDays
	}
	return s.generator.Generate(days)
}

// AddForecast appends f under the service mutex and returns it unchanged.
func (s *ForecastDataService) AddForecast(f types.Forecast) types.Forecast {
	s.mu.Lock()
	s.forecasts = append(s.forecasts, f)
	s.mu.Unlock()
	return f
}

// StoredForecasts returns a snapshot of the sequence recorded via
// AddForecast. Callers never see the internal slice.
func (s *ForecastDataService) StoredForecasts() []types.Forecast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Forecast, len(s.forecasts))
	copy(out, s.forecasts)
	return out
}
