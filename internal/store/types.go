// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"fmt"
	"sync"
)

// EntityFactory produces a fresh, empty entity ready for unmarshalling.
// Factories must return a pointer to a struct so loaded documents are
// addressable for the interception pipeline.
type EntityFactory func() any

// TypeRegistry maps entity type names to factories, enabling polymorphic
// storage of many entity types in a single documents table. Populated during
// startup; safe for concurrent reads afterwards.
type TypeRegistry struct {
	mu        sync.RWMutex
	factories map[string]EntityFactory
}

// NewTypeRegistry constructs an empty TypeRegistry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{factories: make(map[string]EntityFactory)}
}

// Register associates a type name with its factory. Later registrations of
// the same name replace earlier ones.
func (r *TypeRegistry) Register(name string, factory EntityFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// New returns a fresh entity for the given type name, or
// [ErrUnknownEntityType].
func (r *TypeRegistry) New(name string) (any, error) {
	r.mu.RLock()
	factory, found := r.factories[name]
	r.mu.RUnlock()

	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
	}
	return factory(), nil
}

// Known reports whether a type name has a registered factory.
func (r *TypeRegistry) Known(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, found := r.factories[name]
	return found
}
