// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

// Package metadata discovers which fields of an entity type carry vault
// markers and caches the result per type for the lifetime of the process.
//
// Markers are declared as struct tags on entity fields:
//
//	TaxNumber    string `vault:"encrypted"`
//	DepartmentID string `vault:"lookup=Department"`
//
// `encrypted` selects the field for transparent encryption on the store/load
// boundary; `lookup=<Type>` declares the field as a reference holding the id
// of another entity type. Lookup targets are named, never referenced by Go
// type, so entity types may reference each other in any declaration order.
//
// Marker scanning is a pure function of the static type shape. Misconfigured
// markers fail on the first Describe call for the type, before any store
// operation can proceed, and nothing is cached for the failed type.
package metadata
