// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes of the remote vault. Match
// with [errors.Is].
var (
	// ErrBadRequest corresponds to a 400 response, typically an entity type
	// the remote vault does not know.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound corresponds to a 404 response.
	ErrNotFound = errors.New("not found")
	// ErrInternalServerError corresponds to a 500 response.
	ErrInternalServerError = errors.New("internal server error")
)
