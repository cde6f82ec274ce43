// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

// Package adapter provides the HTTP client used when lookup candidates live
// in a remote vault instead of the local store.
//
// The client implements resolver.CandidateLoader over the vault's REST API,
// so the reference resolver works identically against a local document
// storage and a remote instance.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter
