// Package plugin defines the lifecycle and capability-registration contract
// between the host runtime and independently authored modules. The host owns
// discovery, loading, and supervision; a module only implements this surface
// and consumes the capabilities handed to it. Nothing here binds a module to
// the host's concrete web framework or dependency container.
package plugin

import (
	"context"

	"go.uber.org/zap"
)

// Module is the lifecycle contract every plugin implements. The host drives
// the calls in a fixed order: Initialize, RegisterServices,
// RegisterEndpoints, then Dispose on shutdown. Initialize is called exactly
// once; modules may treat a second call as a precondition violation. After
// Dispose no further lifecycle call is valid.
type Module interface {
	// ID returns the stable identifier the host uses as a registration key.
	ID() string
	// Name returns the human-readable module name.
	Name() string
	// Version returns the module version string.
	Version() string
	// Description returns a short self-description for introspection.
	Description() string

	// Initialize prepares the module's internal state using the host's
	// capabilities. Valid only before any other lifecycle call.
	Initialize(ctx context.Context, host Host) error

	// RegisterServices binds the module's shared capabilities into the
	// host's registry. Valid only after Initialize.
	RegisterServices(registry ServiceRegistry) error

	// RegisterEndpoints declares the module's routes against the host's
	// registrar. Valid only after Initialize.
	RegisterEndpoints(registrar EndpointRegistrar) error

	// Dispose releases the module's resources. Valid from any state and
	// terminal: later lifecycle calls must fail or no-op, never crash.
	Dispose() error
}

// Host is the capability handle passed to Initialize. It stands in for the
// external runtime; modules never construct one themselves.
type Host interface {
	// Logger returns the host's leveled logging sink.
	Logger() *zap.SugaredLogger
}

// ServiceRegistry is the host's dependency registry. Registrations are
// singleton-scoped: every resolver observes the same instance.
type ServiceRegistry interface {
	// RegisterSingleton binds instance under key. Registering an already
	// bound key is an error.
	RegisterSingleton(key string, instance interface{}) error

	// Resolve looks up the instance bound under key.
	Resolve(key string) (interface{}, bool)
}

// EndpointRegistrar lets a module declare HTTP-style routes without depending
// on the host's transport. The host adapts HandlerFunc to its own framework
// and invokes handlers through an asynchronous calling convention.
type EndpointRegistrar interface {
	GET(path string, handler HandlerFunc)
	POST(path string, handler HandlerFunc)
}

// HandlerFunc is the transport-neutral handler signature. The returned
// Response body is serialized by the host; a returned error is surfaced
// through the host's error mapping.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Request carries the transport-independent parts of an incoming request.
// Body holds the raw payload; routes that ignore their input simply never
// read it.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Response is the handler's reply. A zero Status means 200. Body is
// serialized to JSON by the host adapter.
type Response struct {
	Status int
	Body   interface{}
}
