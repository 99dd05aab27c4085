package broker

import (
	"sort"
	"sync"

	"github.com/SenneDW/authkit/errors"
)

// Registry manages named broker factories and cached instances. Hosts
// register their platform binding at startup and resolve it by name; an
// unknown name is a startup-time linking failure, not something to retry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]Broker
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]Broker),
	}
}

// RegisterFactory registers a named factory for creating brokers.
func (r *Registry) RegisterFactory(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create instantiates a broker using the named factory and config.
func (r *Registry) Create(name string, cfg map[string]any) (Broker, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.BrokerUnavailable(name)
	}
	return factory(cfg)
}

// Get returns a cached broker instance by name.
func (r *Registry) Get(name string) (Broker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// Set caches a broker instance by name.
func (r *Registry) Set(name string, instance Broker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = instance
}

// Resolve returns the cached instance for name, creating and caching one
// via the registered factory on first use.
func (r *Registry) Resolve(name string, cfg map[string]any) (Broker, error) {
	if b, ok := r.Get(name); ok {
		return b, nil
	}
	b, err := r.Create(name, cfg)
	if err != nil {
		return nil, err
	}
	r.Set(name, b)
	return b, nil
}

// List returns sorted names of all registered factories.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Default registry ---

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide broker registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register registers a factory on the default registry. Platform binding
// packages call this from init.
func Register(name string, factory Factory) {
	defaultRegistry.RegisterFactory(name, factory)
}
