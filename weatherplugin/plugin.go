// Package weatherplugin implements the sample weather module against the
// host plugin contract. It registers an in-memory forecast service and
// exposes synthetic forecast endpoints.
package weatherplugin

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/hostframe/weather-plugin/errors"
	"github.com/hostframe/weather-plugin/forecast"
	"github.com/hostframe/weather-plugin/plugin"
	"github.com/hostframe/weather-plugin/services"
	"github.com/hostframe/weather-plugin/types"
)

// Module identity. Stable for the process lifetime; the host keys its
// registrations on ID.
const (
	pluginID          = "weather-sample"
	pluginName        = "Weather Sample Plugin"
	pluginVersion     = "1.0.0"
	pluginDescription = "Sample plugin serving synthetic weather forecasts"
	pluginAuthor      = "Hostframe Samples"
)

// PluginRegistryKey is the key the module registers itself under for
// introspection by other host components.
const PluginRegistryKey = "plugin." + pluginID

// lifecycleState tracks the module through its fixed state machine.
type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateInitialized
	stateDisposed
)

func (s lifecycleState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateInitialized:
		return "initialized"
	case stateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Plugin is the weather sample module. It owns a local forecast list seeded
// at initialization, kept independent from the forecast service's stored
// sequence (the two are never reconciled).
type Plugin struct {
	generator *forecast.Generator
	service   *services.ForecastDataService
	seedDays  int

	mu        sync.Mutex
	state     lifecycleState
	log       *zap.SugaredLogger
	forecasts []types.Forecast
}

var _ plugin.Module = (*Plugin)(nil)

// New constructs the module. seedDays controls how many forecasts Initialize
// seeds into the local list; values outside [1, forecast.MaxDays] fall back
// to the service default.
func New(gen *forecast.Generator, seedDays int) *Plugin {
	if seedDays < 1 || seedDays > forecast.MaxDays {
		seedDays = services.DefaultForecastDays
	}
	return &Plugin{
		generator: gen,
		service:   services.NewForecastDataService(gen),
		seedDays:  seedDays,
	}
}

func (p *Plugin) ID() string          { return pluginID }
func (p *Plugin) Name() string        { return pluginName }
func (p *Plugin) Version() string     { return pluginVersion }
func (p *Plugin) Description() string { return pluginDescription }

// Author returns the module author reported by the info endpoint.
func (p *Plugin) Author() string { return pluginAuthor }

// Initialize seeds the local forecast list and captures the host's logging
// capability. Valid only from the uninitialized state; the host guarantees a
// single call.
func (p *Plugin) Initialize(ctx context.Context, host plugin.Host) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateUninitialized {
		return apperrors.LifecycleViolation(
			"plugin cannot be initialized",
			fmt.Sprintf("current state: %s", p.state))
	}

	seeded, err := p.generator.Generate(p.seedDays)
	if err != nil {
		return err
	}

	p.log = host.Logger()
	p.forecasts = seeded
	p.state = stateInitialized

	p.log.Infow("weather plugin initialized",
		"id", pluginID,
		"version", pluginVersion,
		"seededForecasts", len(seeded))
	return nil
}

// RegisterServices binds the forecast service and the plugin itself into the
// host registry. Valid only when initialized.
func (p *Plugin) RegisterServices(registry plugin.ServiceRegistry) error {
	if err := p.requireInitialized("RegisterServices"); err != nil {
		return err
	}

	if err := registry.RegisterSingleton(services.ForecastServiceKey, p.service); err != nil {
		return err
	}
	return registry.RegisterSingleton(PluginRegistryKey, p)
}

// RegisterEndpoints declares the module's four routes. Valid only when
// initialized.
func (p *Plugin) RegisterEndpoints(registrar plugin.EndpointRegistrar) error {
	if err := p.requireInitialized("RegisterEndpoints"); err != nil {
		return err
	}

	registrar.GET(ForecastPath, p.handleGetForecast)
	registrar.GET(CurrentPath, p.handleGetCurrent)
	registrar.POST(ForecastPath, p.handlePostForecast)
	registrar.GET(InfoPath, p.handleGetInfo)
	return nil
}

// Dispose clears the local forecast list and ends the lifecycle. Disposing an
// already disposed module is a no-op; any other lifecycle call afterward
// fails with a lifecycle violation.
func (p *Plugin) Dispose() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == stateDisposed {
		return nil
	}

	p.forecasts = nil
	p.state = stateDisposed
	if p.log != nil {
		p.log.Infow("weather plugin disposed", "id", pluginID)
	}
	return nil
}

// Service exposes the module's forecast service, mainly for hosts that wire
// it directly instead of resolving it from the registry.
func (p *Plugin) Service() *services.ForecastDataService {
	return p.service
}

// LocalForecasts returns a snapshot of the module's seeded list.
func (p *Plugin) LocalForecasts() []types.Forecast {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]types.Forecast, len(p.forecasts))
	copy(out, p.forecasts)
	return out
}

func (p *Plugin) requireInitialized(op string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateInitialized {
		return apperrors.LifecycleViolation(
			fmt.Sprintf("%s requires an initialized plugin", op),
			fmt.Sprintf("current state: %s", p.state))
	}
	return nil
}
