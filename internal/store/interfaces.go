// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"

	"github.com/tbessonov/go-field-vault/models"
)

// DocumentRepository provides raw persistence for documents and projection
// rows. Implementations exist for PostgreSQL, SQLite and process memory; all
// of them are oblivious to encryption — bodies arrive already transformed by
// the interception pipeline and leave untouched.
type DocumentRepository interface {
	// SaveDocument inserts or replaces a document keyed by (type, id).
	SaveDocument(ctx context.Context, doc models.Document) error

	// GetDocument returns the document with the given type and id, or
	// [ErrDocumentNotFound].
	GetDocument(ctx context.Context, entityType, id string) (models.Document, error)

	// ListDocuments returns the documents of entityType with the given ids.
	// Unknown ids are silently absent from the result. An empty ids slice
	// returns every document of the type.
	ListDocuments(ctx context.Context, entityType string, ids []string) ([]models.Document, error)

	// DeleteDocument removes a document, returning [ErrDocumentNotFound]
	// when nothing matched.
	DeleteDocument(ctx context.Context, entityType, id string) error

	// ReplaceIndexEntries atomically swaps the projection rows of one entity
	// type for a freshly built set.
	ReplaceIndexEntries(ctx context.Context, entityType string, entries []models.IndexEntry) error

	// ListIndexEntries returns the current projection rows of one entity type.
	ListIndexEntries(ctx context.Context, entityType string) ([]models.IndexEntry, error)
}
