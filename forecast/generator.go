// Package forecast produces bounded sequences of synthetic weather forecasts.
package forecast

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	apperrors "github.com/hostframe/weather-plugin/errors"
	"github.com/hostframe/weather-plugin/types"
)

// MaxDays is the longest forecast horizon a single call may produce.
// Requests above it are silently clamped.
const MaxDays = 30

// Generator produces synthetic forecasts from an injected randomness source.
// The zero source is replaced by a time-seeded one; tests pass a fixed seed
// to make output distributions reproducible.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a Generator drawing from src. A nil src falls back to
// a time-seeded source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{
		rng: rand.New(src),
		now: time.Now,
	}
}

// Generate returns count forecasts dated from tomorrow onward (1-indexed
// offsets from today). Temperatures are drawn uniformly from
// [MinTemperatureC, MaxTemperatureC] and summaries uniformly from the fixed
// vocabulary. count above MaxDays is clamped; count below 1 is rejected.
func (g *Generator) Generate(count int) ([]types.Forecast, error) {
	if count <= 0 {
		return nil, apperrors.InvalidArgument(
			"forecast count must be positive",
			fmt.Sprintf("got %d", count))
	}
	if count > MaxDays {
		count = MaxDays
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.today()
	out := make([]types.Forecast, count)
	for i := range out {
		summary := types.Summaries[g.rng.Intn(len(types.Summaries))]
		out[i] = types.Forecast{
			Date:         today.AddDate(0, 0, i+1),
			TemperatureC: g.randomTemperature(),
			Summary:      &summary,
		}
	}
	return out, nil
}

// Today returns a single forecast dated today with no summary set. Used by
// the current-conditions endpoint, which supplies its own label.
func (g *Generator) Today() types.Forecast {
	g.mu.Lock()
	defer g.mu.Unlock()

	return types.Forecast{
		Date:         g.today(),
		TemperatureC: g.randomTemperature(),
	}
}

// randomTemperature draws uniformly from the closed Celsius range.
// Callers must hold g.mu.
func (g *Generator) randomTemperature() int {
	return types.MinTemperatureC + g.rng.Intn(types.MaxTemperatureC-types.MinTemperatureC+1)
}

// today truncates the clock to a UTC calendar date.
func (g *Generator) today() time.Time {
	now := g.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
