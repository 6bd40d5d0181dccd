package host

import (
	"sync"

	apperrors "github.com/hostframe/weather-plugin/errors"
	"github.com/hostframe/weather-plugin/plugin"
)

// Registry is the in-memory singleton service registry. It is safe for
// concurrent registration and resolution.
type Registry struct {
	mu       sync.RWMutex
	services map[string]interface{}
}

var _ plugin.ServiceRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]interface{})}
}

// RegisterSingleton binds instance under key. Duplicate keys are rejected so
// two modules cannot silently shadow each other's capabilities.
func (r *Registry) RegisterSingleton(key string, instance interface{}) error {
	if key == "" {
		return apperrors.InvalidArgument("registration key must not be empty", "")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[key]; exists {
		return apperrors.AlreadyRegistered(key)
	}
	r.services[key] = instance
	return nil
}

// Resolve looks up the instance bound under key.
func (r *Registry) Resolve(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instance, ok := r.services[key]
	return instance, ok
}

// Keys returns the registered keys, for host introspection.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.services))
	for key := range r.services {
		keys = append(keys, key)
	}
	return keys
}
