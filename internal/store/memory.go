// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/tbessonov/go-field-vault/models"
)

// memoryRepository is the in-process [DocumentRepository], used in tests and
// for local development without a database.
type memoryRepository struct {
	mu          sync.RWMutex
	documents   map[string]map[string]models.Document // type -> id -> document
	projections map[string][]models.IndexEntry        // type -> rows
}

// NewMemoryRepository constructs an empty in-memory [DocumentRepository].
func NewMemoryRepository() DocumentRepository {
	return &memoryRepository{
		documents:   make(map[string]map[string]models.Document),
		projections: make(map[string][]models.IndexEntry),
	}
}

func (r *memoryRepository) SaveDocument(_ context.Context, doc models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.documents[doc.Type] == nil {
		r.documents[doc.Type] = make(map[string]models.Document)
	}
	// Copy the body so later caller mutations cannot reach the stored state.
	stored := doc
	stored.Body = append([]byte(nil), doc.Body...)
	r.documents[doc.Type][doc.ID] = stored

	return nil
}

func (r *memoryRepository) GetDocument(_ context.Context, entityType, id string) (models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, found := r.documents[entityType][id]
	if !found {
		return models.Document{}, ErrDocumentNotFound
	}

	doc.Body = append([]byte(nil), doc.Body...)
	return doc, nil
}

func (r *memoryRepository) ListDocuments(_ context.Context, entityType string, ids []string) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.documents[entityType]

	var docs []models.Document
	if len(ids) == 0 {
		for _, doc := range byID {
			doc.Body = append([]byte(nil), doc.Body...)
			docs = append(docs, doc)
		}
		sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
		return docs, nil
	}

	for _, id := range ids {
		if doc, found := byID[id]; found {
			doc.Body = append([]byte(nil), doc.Body...)
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (r *memoryRepository) DeleteDocument(_ context.Context, entityType, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.documents[entityType][id]; !found {
		return ErrDocumentNotFound
	}
	delete(r.documents[entityType], id)

	return nil
}

func (r *memoryRepository) ReplaceIndexEntries(_ context.Context, entityType string, entries []models.IndexEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.projections[entityType] = append([]models.IndexEntry(nil), entries...)
	return nil
}

func (r *memoryRepository) ListIndexEntries(_ context.Context, entityType string) ([]models.IndexEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.IndexEntry(nil), r.projections[entityType]...), nil
}
