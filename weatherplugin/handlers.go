package weatherplugin

import (
	"context"
	"net/http"
	"time"

	"github.com/hostframe/weather-plugin/plugin"
	"github.com/hostframe/weather-plugin/services"
	"github.com/hostframe/weather-plugin/types"
)

// Routes declared by the module.
const (
	ForecastPath = "/api/weather/forecast"
	CurrentPath  = "/api/weather/current"
	InfoPath     = "/api/weather/info"
)

// currentSummary is the fixed label on the current-conditions response.
const currentSummary = "Current Weather"

// PostAck acknowledges a forecast submission. The submitted body is accepted
// but never inspected.
type PostAck struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Info is the module self-description served by the info endpoint. Endpoints
// lists the GET routes in stable order.
type Info struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Endpoints   []string `json:"endpoints"`
}

func (p *Plugin) handleGetForecast(ctx context.Context, req *plugin.Request) (*plugin.Response, error) {
	forecasts, err := p.service.GetForecast(services.DefaultForecastDays)
	if err != nil {
		return nil, err
	}
	return &plugin.Response{Status: http.StatusOK, Body: forecasts}, nil
}

func (p *Plugin) handleGetCurrent(ctx context.Context, req *plugin.Request) (*plugin.Response, error) {
	current := p.generator.Today()
	current.Summary = types.SummaryRef(currentSummary)
	return &plugin.Response{Status: http.StatusOK, Body: current}, nil
}

// handlePostForecast accepts any payload and ignores it. The response is a
// fixed acknowledgement, not a transformation of the input.
func (p *Plugin) handlePostForecast(ctx context.Context, req *plugin.Request) (*plugin.Response, error) {
	return &plugin.Response{
		Status: http.StatusOK,
		Body: PostAck{
			Message:   "Forecast submission received",
			Timestamp: time.Now().UTC(),
		},
	}, nil
}

func (p *Plugin) handleGetInfo(ctx context.Context, req *plugin.Request) (*plugin.Response, error) {
	return &plugin.Response{
		Status: http.StatusOK,
		Body: Info{
			ID:          pluginID,
			Name:        pluginName,
			Version:     pluginVersion,
			Description: pluginDescription,
			Author:      pluginAuthor,
			Endpoints:   []string{ForecastPath, CurrentPath, InfoPath},
		},
	}, nil
}
