package forecast

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hostframe/weather-plugin/errors"
	"github.com/hostframe/weather-plugin/types"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)
}

func newTestGenerator(seed int64) *Generator {
	g := NewGenerator(rand.NewSource(seed))
	g.now = fixedClock
	return g
}

func TestGenerateCounts(t *testing.T) {
	g := newTestGenerator(1)

	for count := 1; count <= MaxDays; count++ {
		out, err := g.Generate(count)
		require.NoError(t, err)
		assert.Len(t, out, count)
	}
}

func TestGenerateBounds(t *testing.T) {
	g := newTestGenerator(42)

	vocabulary := make(map[string]bool, len(types.Summaries))
	for _, s := range types.Summaries {
		vocabulary[s] = true
	}

	out, err := g.Generate(MaxDays)
	require.NoError(t, err)

	for i, f := range out {
		assert.GreaterOrEqual(t, f.TemperatureC, types.MinTemperatureC, "forecast %d", i)
		assert.LessOrEqual(t, f.TemperatureC, types.MaxTemperatureC, "forecast %d", i)
		require.NotNil(t, f.Summary, "forecast %d", i)
		assert.True(t, vocabulary[*f.Summary], "forecast %d has summary %q", i, *f.Summary)
	}
}

func TestGenerateDates(t *testing.T) {
	g := newTestGenerator(7)

	out, err := g.Generate(5)
	require.NoError(t, err)

	for i, f := range out {
		expected := time.Date(2026, 8, 23+i+1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, f.Date, "forecast %d", i)
	}
}

func TestGenerateClampsAboveMax(t *testing.T) {
	g := newTestGenerator(3)

	out, err := g.Generate(100)
	require.NoError(t, err)
	assert.Len(t, out, MaxDays)
}

func TestGenerateRejectsNonPositive(t *testing.T) {
	g := newTestGenerator(3)

	for _, count := range []int{0, -1, -30} {
		out, err := g.Generate(count)
		assert.Nil(t, out)
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.InvalidArgumentError, appErr.Type)
	}
}

func TestTemperatureDistributionCoversRange(t *testing.T) {
	// Outputs are distributions, not literals: over many draws a seeded
	// generator should come close to both ends of the closed range.
	g := newTestGenerator(99)

	lowest, highest := types.MaxTemperatureC, types.MinTemperatureC
	for i := 0; i < 200; i++ {
		out, err := g.Generate(MaxDays)
		require.NoError(t, err)
		for _, f := range out {
			if f.TemperatureC < lowest {
				lowest = f.TemperatureC
			}
			if f.TemperatureC > highest {
				highest = f.TemperatureC
			}
		}
	}

	assert.Equal(t, types.MinTemperatureC, lowest)
	assert.Equal(t, types.MaxTemperatureC, highest)
}

func TestToday(t *testing.T) {
	g := newTestGenerator(5)

	f := g.Today()
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), f.Date)
	assert.GreaterOrEqual(t, f.TemperatureC, types.MinTemperatureC)
	assert.LessOrEqual(t, f.TemperatureC, types.MaxTemperatureC)
	assert.Nil(t, f.Summary)
}
