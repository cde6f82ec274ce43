// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // register the "pgx" database/sql driver

	"github.com/tbessonov/go-field-vault/internal/config"
	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/migrations"
)

// DB wraps the raw sql.DB together with the dialect-specific pieces the
// document repository needs: a placeholder format for query building and an
// error classifier for retry decisions.
type DB struct {
	*sql.DB
	placeholder sq.PlaceholderFormat
	classifier  ErrorClassifier
	logger      *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection from cfg, verifies it with
// a ping and returns the wrapped [DB].
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:          conn,
		placeholder: sq.Dollar,
		classifier:  NewPostgresErrorClassifier(),
		logger:      log,
	}, nil
}

// Migrate applies all embedded migrations to the connected database.
func (db *DB) Migrate(dialect string) error {
	return migrations.Migrate(db.DB, dialect)
}
