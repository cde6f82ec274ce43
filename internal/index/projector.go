// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package index

import (
	"context"
	"fmt"
	"time"

	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/internal/metadata"
	"github.com/tbessonov/go-field-vault/internal/resolver"
	"github.com/tbessonov/go-field-vault/models"
)

// EntitySource loads the entities a projection is built from. Implemented by
// the document storage.
type EntitySource interface {
	// LoadBatch returns the entities of entityType with the given ids; an
	// empty ids slice loads every entity of the type.
	LoadBatch(ctx context.Context, entityType string, ids []string) ([]any, error)
}

// EntrySink persists projection rows. Implemented by the document repository.
type EntrySink interface {
	ReplaceIndexEntries(ctx context.Context, entityType string, entries []models.IndexEntry) error
	ListIndexEntries(ctx context.Context, entityType string) ([]models.IndexEntry, error)
}

// Projector rebuilds the reference index of an entity type: load all
// entities, prefetch the referenced lookup targets (one fetch per target
// type), resolve labels and swap the stored rows.
type Projector struct {
	source   EntitySource
	loader   resolver.CandidateLoader
	sink     EntrySink
	registry *metadata.Registry
	resolver *resolver.Resolver
	logger   *logger.Logger
}

// NewProjector constructs a [Projector].
func NewProjector(
	source EntitySource,
	loader resolver.CandidateLoader,
	sink EntrySink,
	registry *metadata.Registry,
	res *resolver.Resolver,
	log *logger.Logger,
) *Projector {
	return &Projector{
		source:   source,
		loader:   loader,
		sink:     sink,
		registry: registry,
		resolver: res,
		logger:   log,
	}
}

// Project builds the projection rows for every entity of entityType without
// persisting them. Each lookup field of each entity yields one row carrying
// the resolved display label.
func (p *Projector) Project(ctx context.Context, entityType string) ([]models.IndexEntry, error) {
	entities, err := p.source.LoadBatch(ctx, entityType, nil)
	if err != nil {
		return nil, fmt.Errorf("load %s entities: %w", entityType, err)
	}
	if len(entities) == 0 {
		return nil, nil
	}

	candidates, err := resolver.Prefetch(ctx, p.loader, p.registry, entities)
	if err != nil {
		return nil, fmt.Errorf("prefetch candidates for %s: %w", entityType, err)
	}

	refs, err := p.resolver.Resolve(entities, candidates)
	if err != nil {
		return nil, fmt.Errorf("resolve references for %s: %w", entityType, err)
	}

	builtAt := time.Now().UTC()
	entries := make([]models.IndexEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, models.IndexEntry{
			EntityType: ref.SourceType,
			EntityID:   ref.SourceID,
			Field:      ref.Field,
			TargetID:   ref.TargetID,
			Label:      ref.Label,
			BuiltAt:    builtAt,
		})
	}

	return entries, nil
}

// Rebuild projects entityType and atomically replaces its stored rows.
func (p *Projector) Rebuild(ctx context.Context, entityType string) error {
	entries, err := p.Project(ctx, entityType)
	if err != nil {
		return err
	}

	if err := p.sink.ReplaceIndexEntries(ctx, entityType, entries); err != nil {
		return fmt.Errorf("replace index entries for %s: %w", entityType, err)
	}

	p.logger.Debug().
		Str("entity_type", entityType).
		Int("entries", len(entries)).
		Msg("reference index rebuilt")
	return nil
}

// RebuildAll rebuilds every given entity type, stopping at the first error.
func (p *Projector) RebuildAll(ctx context.Context, entityTypes []string) error {
	for _, entityType := range entityTypes {
		if err := p.Rebuild(ctx, entityType); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the current stored projection rows of entityType.
func (p *Projector) Entries(ctx context.Context, entityType string) ([]models.IndexEntry, error) {
	return p.sink.ListIndexEntries(ctx, entityType)
}
