package generators

import "fmt"

// Factory constructs a fresh backend instance.
type Factory func() Backend

// Registry manages the available backend factories, keyed by kind.
type Registry struct {
	backends map[Kind]Factory
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[Kind]Factory)}
}

// Register adds a backend factory for a kind, replacing any existing one.
func (r *Registry) Register(kind Kind, factory Factory) {
	r.backends[kind] = factory
}

// Get constructs a backend of the given kind.
func (r *Registry) Get(kind Kind) (Backend, error) {
	factory, ok := r.backends[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported generator kind: %s", kind)
	}
	return factory(), nil
}

// Kinds returns the registered kinds.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.backends))
	for k := range r.backends {
		kinds = append(kinds, k)
	}
	return kinds
}
