// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package metadata

import "errors"

// Registration errors returned by [Registry.Describe]. All of them abort the
// registration of the offending type entirely: no partial descriptor is ever
// cached. Callers should use [errors.Is] to match against these values.
var (
	// ErrConflictingFieldMarkers is returned when a single field carries more
	// than one vault marker (e.g. both "encrypted" and "lookup=...").
	ErrConflictingFieldMarkers = errors.New("field carries conflicting vault markers")

	// ErrInvalidMarkerTarget is returned when a marker is placed on a field of
	// an unsupported type: "encrypted" requires string or *string, "lookup"
	// requires string.
	ErrInvalidMarkerTarget = errors.New("vault marker placed on unsupported field type")

	// ErrUnknownFieldMarker is returned when a vault tag contains a value that
	// is neither "encrypted" nor "lookup=<Type>".
	ErrUnknownFieldMarker = errors.New("unknown vault marker")

	// ErrNotAStruct is returned when the value passed to Describe is neither
	// a struct nor a pointer to one.
	ErrNotAStruct = errors.New("value is not a struct or pointer to struct")
)
