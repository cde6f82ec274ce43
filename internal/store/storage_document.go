// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/tbessonov/go-field-vault/internal/intercept"
	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/internal/metadata"
	"github.com/tbessonov/go-field-vault/models"
)

// DocumentStorage is the high-level store boundary for entities. Every write
// passes through the encryption interceptor's BeforeStore hook and every
// read through AfterLoad — unconditionally, for every registered type;
// marker-free types simply pass through the hooks untouched.
//
// It also implements resolver.CandidateLoader, so the projector and the HTTP
// surface can pre-fetch candidate sets straight from the store.
type DocumentStorage struct {
	repository  DocumentRepository
	interceptor *intercept.Interceptor
	types       *TypeRegistry
	logger      *logger.Logger
}

// NewDocumentStorage constructs a [DocumentStorage].
func NewDocumentStorage(
	repository DocumentRepository,
	interceptor *intercept.Interceptor,
	types *TypeRegistry,
	log *logger.Logger,
) *DocumentStorage {
	log.Debug().Msg("creating document storage")
	return &DocumentStorage{
		repository:  repository,
		interceptor: interceptor,
		types:       types,
		logger:      log,
	}
}

// Types exposes the registry of storable entity types.
func (s *DocumentStorage) Types() *TypeRegistry {
	return s.types
}

// Store persists one entity: marked fields are sealed in place, the entity is
// marshalled and upserted as a document keyed by (type name, id).
//
// The entity the caller holds after a successful Store contains envelopes
// where plaintext used to be; a subsequent Store of the same value is safe
// because the interceptor passes envelopes through verbatim.
func (s *DocumentStorage) Store(ctx context.Context, entity any) error {
	typeName := metadata.TypeNameOf(entity)

	if err := s.interceptor.BeforeStore(entity); err != nil {
		return fmt.Errorf("before-store hook for %s: %w", typeName, err)
	}

	id := entityIDOf(entity)
	if id == "" {
		return fmt.Errorf("%w: %s", ErrMissingDocumentID, typeName)
	}

	body, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal %s %q: %w", typeName, id, err)
	}

	doc := models.Document{
		Type:      typeName,
		ID:        id,
		Body:      body,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repository.SaveDocument(ctx, doc); err != nil {
		return err
	}

	s.logger.Debug().Str("entity_type", typeName).Str("entity_id", id).Msg("document stored")
	return nil
}

// Load materialises one entity: the document is fetched, unmarshalled into a
// fresh instance from the type registry and passed through the AfterLoad
// hook, which restores plaintext for marked fields.
func (s *DocumentStorage) Load(ctx context.Context, entityType, id string) (any, error) {
	doc, err := s.repository.GetDocument(ctx, entityType, id)
	if err != nil {
		return nil, err
	}

	return s.materialize(doc)
}

// LoadBatch materialises the documents of entityType with the given ids in a
// single repository call. Unknown ids are absent from the result. An empty
// ids slice loads every document of the type.
func (s *DocumentStorage) LoadBatch(ctx context.Context, entityType string, ids []string) ([]any, error) {
	docs, err := s.repository.ListDocuments(ctx, entityType, ids)
	if err != nil {
		return nil, err
	}

	entities := make([]any, 0, len(docs))
	for _, doc := range docs {
		entity, err := s.materialize(doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// Delete removes one document.
func (s *DocumentStorage) Delete(ctx context.Context, entityType, id string) error {
	return s.repository.DeleteDocument(ctx, entityType, id)
}

// LoadCandidates implements the resolver's candidate-loader contract: one
// repository call per target type, result keyed by entity id.
func (s *DocumentStorage) LoadCandidates(ctx context.Context, targetType string, ids []string) (map[string]any, error) {
	entities, err := s.LoadBatch(ctx, targetType, ids)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]any, len(entities))
	for _, entity := range entities {
		if id := entityIDOf(entity); id != "" {
			candidates[id] = entity
		}
	}

	return candidates, nil
}

func (s *DocumentStorage) materialize(doc models.Document) (any, error) {
	entity, err := s.types.New(doc.Type)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(doc.Body, entity); err != nil {
		return nil, fmt.Errorf("unmarshal %s %q: %w", doc.Type, doc.ID, err)
	}

	if err := s.interceptor.AfterLoad(entity); err != nil {
		return nil, fmt.Errorf("after-load hook for %s %q: %w", doc.Type, doc.ID, err)
	}

	return entity, nil
}

// entityIDOf reads the conventional exported "ID" string field.
func entityIDOf(entity any) string {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	f := v.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}
