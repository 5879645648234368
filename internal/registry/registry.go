// Package registry maps scene names to the factories that build them.
// The platform registers one factory per scene at startup and creates
// screens from transitions without knowing their concrete types.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/energy-guardian/internal/scene"
)

// ErrUnknownScene is returned by Create for names without a factory.
var ErrUnknownScene = errors.New("registry: unknown scene")

// Factory builds a scene from the payload of the transition that targets it.
type Factory[S any] func(p scene.Payload) (S, error)

// Registry holds the factories of one platform. The zero value is not usable;
// call New.
type Registry[S any] struct {
	mu        sync.RWMutex
	factories map[scene.Name]Factory[S]
}

// New creates an empty registry.
func New[S any]() *Registry[S] {
	return &Registry[S]{factories: make(map[scene.Name]Factory[S])}
}

// Register adds a factory for name.
// Panics if the name is already registered.
func (r *Registry[S]) Register(name scene.Name, f Factory[S]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", name))
	}
	r.factories[name] = f
}

// Create builds the target scene of t.
func (r *Registry[S]) Create(t scene.Transition) (S, error) {
	r.mu.RLock()
	f, ok := r.factories[t.Target]
	r.mu.RUnlock()

	if !ok {
		var zero S
		return zero, fmt.Errorf("%w %q", ErrUnknownScene, t.Target)
	}
	s, err := f(t.Payload)
	if err != nil {
		var zero S
		return zero, fmt.Errorf("registry: cannot create scene %q: %w", t.Target, err)
	}
	return s, nil
}

// Exists checks if a factory is registered for name.
func (r *Registry[S]) Exists(name scene.Name) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}

// Names returns the registered scene names in sorted order.
func (r *Registry[S]) Names() []scene.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]scene.Name, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
