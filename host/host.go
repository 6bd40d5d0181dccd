// Package host provides a reference runtime for driving plugin modules: an
// in-memory service registry, a capability handle, and a Gin-backed endpoint
// registrar. Production hosts supply their own implementations of the same
// contracts.
package host

import (
	"go.uber.org/zap"

	"github.com/hostframe/weather-plugin/plugin"
)

// CapabilityHost hands host capabilities to modules during Initialize.
type CapabilityHost struct {
	log *zap.SugaredLogger
}

var _ plugin.Host = (*CapabilityHost)(nil)

// NewCapabilityHost wraps log as the host's logging sink.
func NewCapabilityHost(log *zap.SugaredLogger) *CapabilityHost {
	return &CapabilityHost{log: log}
}

// Logger returns the host's leveled logging sink.
func (h *CapabilityHost) Logger() *zap.SugaredLogger {
	return h.log
}
