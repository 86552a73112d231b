package aura

import (
	"fmt"
	"sync"
)

// Registry stores effect definitions and aura constructors by id. Append-only:
// entries are never mutated or removed after registration, so lookups are
// safe from any goroutine.
type Registry struct {
	mu      sync.RWMutex
	effects map[string]*Effect
	auras   map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		effects: make(map[string]*Effect, 16),
		auras:   make(map[string]Constructor, 16),
	}
}

// RegisterEffect registers an effect definition under its ID.
func (r *Registry) RegisterEffect(e *Effect) error {
	if e == nil || e.ID == "" {
		return fmt.Errorf("effect must have an id")
	}
	if e.Reduce == nil || e.Apply == nil {
		return fmt.Errorf("effect %q must have reduce and apply", e.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.effects[e.ID]; ok {
		return fmt.Errorf("%w: effect %q", ErrDuplicateRegistration, e.ID)
	}
	r.effects[e.ID] = e
	return nil
}

// RegisterAura registers an aura constructor under name. Effect ids
// referenced by the constructor's templates are not validated here; they
// are resolved lazily when the aura is applied.
func (r *Registry) RegisterAura(name string, c Constructor) error {
	if name == "" {
		return fmt.Errorf("aura must have a name")
	}
	if c == nil {
		return fmt.Errorf("aura %q must have a constructor", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auras[name]; ok {
		return fmt.Errorf("%w: aura %q", ErrDuplicateRegistration, name)
	}
	r.auras[name] = c
	return nil
}

// Effect returns the registered effect definition for id.
func (r *Registry) Effect(id string) (*Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.effects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, id)
	}
	return e, nil
}

// Aura returns the registered constructor for name.
func (r *Registry) Aura(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.auras[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAura, name)
	}
	return c, nil
}
