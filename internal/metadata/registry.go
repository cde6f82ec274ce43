// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package metadata

import (
	"fmt"
	"reflect"
	"sync"
)

// Descriptor is the registered shape of one entity type: its name and the
// ordered sequence of marked fields. Built once per type, cached for the
// process lifetime, never mutated after construction.
type Descriptor struct {
	// TypeName is the entity type name (the Go struct name).
	TypeName string

	// Fields holds the marked fields in declaration order. Unmarked fields
	// do not appear here.
	Fields []FieldSpec
}

// HasMarkers reports whether the type carries any marked field. Types without
// markers pass through the interception pipeline untouched.
func (d *Descriptor) HasMarkers() bool {
	return len(d.Fields) > 0
}

// EncryptedFields returns the fields marked for encryption, in declaration order.
func (d *Descriptor) EncryptedFields() []FieldSpec {
	return d.fieldsOfKind(KindEncrypted)
}

// LookupFields returns the lookup-reference fields, in declaration order.
func (d *Descriptor) LookupFields() []FieldSpec {
	return d.fieldsOfKind(KindLookup)
}

func (d *Descriptor) fieldsOfKind(kind FieldKind) []FieldSpec {
	var specs []FieldSpec
	for _, f := range d.Fields {
		if f.Kind == kind {
			specs = append(specs, f)
		}
	}
	return specs
}

// Registry scans entity types for vault markers and caches one [Descriptor]
// per type. The cache is the only shared mutable state in the interception
// pipeline; it is registered lazily on first encounter of a type and guarded
// so that exactly one registration wins under concurrent first access.
//
// A Registry is created once at startup and passed by reference to every
// component that needs it, rather than living as an ambient global.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*Descriptor
}

// NewRegistry constructs an empty Registry ready for use.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[reflect.Type]*Descriptor)}
}

// Describe returns the [Descriptor] for the dynamic type of v, computing and
// caching it on first use. v may be a struct value or a (possibly nested)
// pointer to one. Repeated calls for the same type return the same cached
// descriptor.
//
// Describe fails with [ErrConflictingFieldMarkers], [ErrInvalidMarkerTarget]
// or [ErrUnknownFieldMarker] when a marker is misconfigured, and with
// [ErrNotAStruct] for non-struct values. On failure nothing is cached, so the
// error is reported again on every subsequent call for the type.
func (r *Registry) Describe(v any) (*Descriptor, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotAStruct, v)
	}

	r.mu.RLock()
	d, found := r.byType[t]
	r.mu.RUnlock()
	if found {
		return d, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have registered
	// the type between the RUnlock and the Lock.
	if d, found := r.byType[t]; found {
		return d, nil
	}

	d, err := describeType(t)
	if err != nil {
		return nil, err
	}
	r.byType[t] = d

	return d, nil
}

// describeType builds the descriptor for a struct type. Pure: no I/O, no
// side effects; the caller owns the cache write.
func describeType(t reflect.Type) (*Descriptor, error) {
	d := &Descriptor{TypeName: t.Name()}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		spec, marked, err := parseFieldMarkers(d.TypeName, f)
		if err != nil {
			return nil, err
		}
		if marked {
			d.Fields = append(d.Fields, spec)
		}
	}

	return d, nil
}

// TypeNameOf returns the entity type name for v: the struct name after
// stripping any pointer indirection. Used as the document type key and as the
// lookup-target key, matching [Descriptor.TypeName].
func TypeNameOf(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
