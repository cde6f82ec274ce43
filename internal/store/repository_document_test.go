// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/models"
)

func newMockRepository(t *testing.T) (DocumentRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{
		DB:          conn,
		placeholder: sq.Dollar,
		classifier:  NewPostgresErrorClassifier(),
		logger:      logger.Nop(),
	}
	return NewDocumentRepository(db, logger.Nop()), mock
}

func TestDocumentRepository_SaveDocument(t *testing.T) {
	repo, mock := newMockRepository(t)

	doc := models.Document{
		Type:      "Employee",
		ID:        "emp-1",
		Body:      []byte(`{"id":"emp-1"}`),
		UpdatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO documents (type,id,body,updated_at) VALUES ($1,$2,$3,$4) " +
			"ON CONFLICT (type, id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at",
	)).
		WithArgs(doc.Type, doc.ID, doc.Body, doc.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveDocument(context.Background(), doc)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_SaveDocument_NoRowsAffected(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveDocument(context.Background(), models.Document{Type: "Employee", ID: "emp-1"})

	assert.ErrorIs(t, err, ErrDocumentNotSaved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetDocument(t *testing.T) {
	repo, mock := newMockRepository(t)

	updatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT type, id, body, updated_at FROM documents WHERE type = $1 AND id = $2",
	)).
		WithArgs("Employee", "emp-1").
		WillReturnRows(sqlmock.NewRows([]string{"type", "id", "body", "updated_at"}).
			AddRow("Employee", "emp-1", []byte(`{"id":"emp-1"}`), updatedAt))

	doc, err := repo.GetDocument(context.Background(), "Employee", "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "Employee", doc.Type)
	assert.Equal(t, "emp-1", doc.ID)
	assert.JSONEq(t, `{"id":"emp-1"}`, string(doc.Body))
	assert.Equal(t, updatedAt, doc.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetDocument_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT type, id, body, updated_at FROM documents").
		WithArgs("Employee", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDocument(context.Background(), "Employee", "missing")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListDocuments_AllOfType(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT type, id, body, updated_at FROM documents WHERE type = $1 ORDER BY id",
	)).
		WithArgs("Department").
		WillReturnRows(sqlmock.NewRows([]string{"type", "id", "body", "updated_at"}).
			AddRow("Department", "dep-1", []byte(`{}`), time.Now()).
			AddRow("Department", "dep-2", []byte(`{}`), time.Now()))

	docs, err := repo.ListDocuments(context.Background(), "Department", nil)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "dep-1", docs[0].ID)
	assert.Equal(t, "dep-2", docs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListDocuments_ByIDs(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT type, id, body, updated_at FROM documents WHERE type = $1 AND id IN ($2,$3) ORDER BY id",
	)).
		WithArgs("Department", "dep-1", "dep-9").
		WillReturnRows(sqlmock.NewRows([]string{"type", "id", "body", "updated_at"}).
			AddRow("Department", "dep-1", []byte(`{}`), time.Now()))

	docs, err := repo.ListDocuments(context.Background(), "Department", []string{"dep-1", "dep-9"})

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "dep-1", docs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_DeleteDocument(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM documents WHERE type = $1 AND id = $2",
	)).
		WithArgs("Employee", "emp-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteDocument(context.Background(), "Employee", "emp-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_DeleteDocument_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("Employee", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDocument(context.Background(), "Employee", "missing")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ReplaceIndexEntries(t *testing.T) {
	repo, mock := newMockRepository(t)

	builtAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	entries := []models.IndexEntry{
		{EntityType: "Employee", EntityID: "emp-1", Field: "DepartmentID", TargetID: "dep-7", Label: "Company / IT", BuiltAt: builtAt},
		{EntityType: "Employee", EntityID: "emp-2", Field: "DepartmentID", TargetID: "dep-8", Label: "Company / HR", BuiltAt: builtAt},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM projections WHERE entity_type = $1",
	)).
		WithArgs("Employee").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO projections (entity_type,entity_id,field,target_id,label,built_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12)",
	)).
		WithArgs(
			"Employee", "emp-1", "DepartmentID", "dep-7", "Company / IT", builtAt,
			"Employee", "emp-2", "DepartmentID", "dep-8", "Company / HR", builtAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceIndexEntries(context.Background(), "Employee", entries)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ReplaceIndexEntries_EmptySetClearsRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM projections").
		WithArgs("Employee").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceIndexEntries(context.Background(), "Employee", nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListIndexEntries(t *testing.T) {
	repo, mock := newMockRepository(t)

	builtAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT entity_type, entity_id, field, target_id, label, built_at "+
			"FROM projections WHERE entity_type = $1 ORDER BY entity_id, field",
	)).
		WithArgs("Contract").
		WillReturnRows(sqlmock.NewRows([]string{"entity_type", "entity_id", "field", "target_id", "label", "built_at"}).
			AddRow("Contract", "ctr-1", "CounterpartyID", "cp-1", "ACME GmbH", builtAt).
			AddRow("Contract", "ctr-1", "DepartmentID", "dep-7", "Company / IT", builtAt))

	entries, err := repo.ListIndexEntries(context.Background(), "Contract")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "CounterpartyID", entries[0].Field)
	assert.Equal(t, "Company / IT", entries[1].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(errors.New("connection refused"))

	err := repo.SaveDocument(context.Background(), models.Document{Type: "Employee", ID: "emp-1"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
