// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/models"
)

// documentRepository is the SQL implementation of [DocumentRepository],
// shared by the PostgreSQL and SQLite backends: the dialect differences live
// entirely in the [DB] wrapper (placeholder format, error classifier).
type documentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] over db.
func NewDocumentRepository(db *DB, log *logger.Logger) DocumentRepository {
	log.Debug().Msg("creating document repository")
	return &documentRepository{db: db, logger: log}
}

func (r *documentRepository) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(r.db.placeholder)
}

// SaveDocument implements [DocumentRepository] with an upsert keyed by
// (type, id). Bodies arrive already transformed by the interception
// pipeline; the repository never inspects them.
func (r *documentRepository) SaveDocument(ctx context.Context, doc models.Document) error {
	query, args, err := r.builder().
		Insert("documents").
		Columns("type", "id", "body", "updated_at").
		Values(doc.Type, doc.ID, doc.Body, doc.UpdatedAt).
		Suffix("ON CONFLICT (type, id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logExecError(err, "SaveDocument", doc.Type, doc.ID)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrDocumentNotSaved
	}

	return nil
}

// GetDocument implements [DocumentRepository].
func (r *documentRepository) GetDocument(ctx context.Context, entityType, id string) (models.Document, error) {
	query, args, err := r.builder().
		Select("type", "id", "body", "updated_at").
		From("documents").
		Where(sq.Eq{"type": entityType}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.Document
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&doc.Type, &doc.ID, &doc.Body, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		r.logExecError(err, "GetDocument", entityType, id)
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc, nil
}

// ListDocuments implements [DocumentRepository]. An empty ids slice returns
// every document of the type.
func (r *documentRepository) ListDocuments(ctx context.Context, entityType string, ids []string) ([]models.Document, error) {
	builder := r.builder().
		Select("type", "id", "body", "updated_at").
		From("documents").
		Where(sq.Eq{"type": entityType}).
		OrderBy("id")
	if len(ids) > 0 {
		builder = builder.Where(sq.Eq{"id": ids})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logExecError(err, "ListDocuments", entityType, "")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.Type, &doc.ID, &doc.Body, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return docs, nil
}

// DeleteDocument implements [DocumentRepository].
func (r *documentRepository) DeleteDocument(ctx context.Context, entityType, id string) error {
	query, args, err := r.builder().
		Delete("documents").
		Where(sq.Eq{"type": entityType}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logExecError(err, "DeleteDocument", entityType, id)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// ReplaceIndexEntries implements [DocumentRepository]: deletes the projection
// rows of the type and inserts the fresh set in one transaction.
func (r *documentRepository) ReplaceIndexEntries(ctx context.Context, entityType string, entries []models.IndexEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	deleteQuery, deleteArgs, err := r.builder().
		Delete("projections").
		Where(sq.Eq{"entity_type": entityType}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		r.logExecError(err, "ReplaceIndexEntries", entityType, "")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(entries) > 0 {
		builder := r.builder().
			Insert("projections").
			Columns("entity_type", "entity_id", "field", "target_id", "label", "built_at")
		for _, e := range entries {
			builder = builder.Values(e.EntityType, e.EntityID, e.Field, e.TargetID, e.Label, e.BuiltAt)
		}

		insertQuery, insertArgs, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			r.logExecError(err, "ReplaceIndexEntries", entityType, "")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListIndexEntries implements [DocumentRepository].
func (r *documentRepository) ListIndexEntries(ctx context.Context, entityType string) ([]models.IndexEntry, error) {
	query, args, err := r.builder().
		Select("entity_type", "entity_id", "field", "target_id", "label", "built_at").
		From("projections").
		Where(sq.Eq{"entity_type": entityType}).
		OrderBy("entity_id", "field").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logExecError(err, "ListIndexEntries", entityType, "")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.IndexEntry
	for rows.Next() {
		var e models.IndexEntry
		if err := rows.Scan(&e.EntityType, &e.EntityID, &e.Field, &e.TargetID, &e.Label, &e.BuiltAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// logExecError records a failed database operation together with its retry
// classification.
func (r *documentRepository) logExecError(err error, op, entityType, id string) {
	r.logger.Error().
		Str("op", op).
		Str("entity_type", entityType).
		Str("entity_id", id).
		Bool("retryable", r.db.classifier.Classify(err) == Retryable).
		Err(err).
		Msg("database operation failed")
}
