// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package metadata

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct-tag key scanned for field markers.
const TagName = "vault"

const (
	markerEncrypted = "encrypted"
	markerLookup    = "lookup"
)

// FieldKind classifies what special handling a marked field receives.
type FieldKind int

const (
	// KindEncrypted marks a field whose value is encrypted before store and
	// decrypted after load.
	KindEncrypted FieldKind = iota + 1

	// KindLookup marks a field holding the id of another entity type,
	// resolved into a display label by the reference resolver.
	KindLookup
)

// FieldSpec describes a single marked field. Immutable once registered;
// unique per (Owner, Name).
type FieldSpec struct {
	// Owner is the name of the entity type declaring the field.
	Owner string

	// Name is the Go field name.
	Name string

	// Kind selects encryption or lookup handling.
	Kind FieldKind

	// Target is the referenced entity type name. Set only for KindLookup.
	Target string
}

// parseFieldMarkers inspects one struct field and returns its FieldSpec, or
// ok=false when the field carries no vault tag. A field may carry at most one
// marker; marker shape and field type are validated here so that every
// misconfiguration fails at registration time.
func parseFieldMarkers(owner string, f reflect.StructField) (FieldSpec, bool, error) {
	tag, found := f.Tag.Lookup(TagName)
	if !found || tag == "" || tag == "-" {
		return FieldSpec{}, false, nil
	}

	parts := strings.Split(tag, ",")
	if len(parts) > 1 {
		return FieldSpec{}, false, fmt.Errorf("%w: %s.%s has %q", ErrConflictingFieldMarkers, owner, f.Name, tag)
	}

	marker := strings.TrimSpace(parts[0])
	switch {
	case marker == markerEncrypted:
		if !isStringKind(f.Type) && !isStringPtrKind(f.Type) {
			return FieldSpec{}, false, fmt.Errorf("%w: %s.%s is %s, %q requires string or *string",
				ErrInvalidMarkerTarget, owner, f.Name, f.Type, markerEncrypted)
		}
		return FieldSpec{Owner: owner, Name: f.Name, Kind: KindEncrypted}, true, nil

	case strings.HasPrefix(marker, markerLookup+"="):
		target := strings.TrimPrefix(marker, markerLookup+"=")
		if target == "" {
			return FieldSpec{}, false, fmt.Errorf("%w: %s.%s has empty lookup target", ErrUnknownFieldMarker, owner, f.Name)
		}
		if !isStringKind(f.Type) {
			return FieldSpec{}, false, fmt.Errorf("%w: %s.%s is %s, %q requires string",
				ErrInvalidMarkerTarget, owner, f.Name, f.Type, markerLookup)
		}
		return FieldSpec{Owner: owner, Name: f.Name, Kind: KindLookup, Target: target}, true, nil

	default:
		return FieldSpec{}, false, fmt.Errorf("%w: %s.%s has %q", ErrUnknownFieldMarker, owner, f.Name, tag)
	}
}

func isStringKind(t reflect.Type) bool {
	return t.Kind() == reflect.String
}

func isStringPtrKind(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.String
}
