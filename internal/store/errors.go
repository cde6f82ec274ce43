// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrDocumentNotFound is returned when a queried document (identified by
	// type and id) does not exist in the store.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrDocumentNotSaved is returned when a write completes without a driver
	// error but the number of affected rows is zero, indicating that nothing
	// was actually persisted.
	ErrDocumentNotSaved = errors.New("document was not saved")

	// ErrMissingDocumentID is returned by the storage layer when an entity
	// arrives for persistence without an id.
	ErrMissingDocumentID = errors.New("entity has no id")

	// ErrUnknownEntityType is returned when a type name has no registered
	// factory in the [TypeRegistry].
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
