// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tbessonov/go-field-vault/internal/config"
	"github.com/tbessonov/go-field-vault/internal/logger"
)

// NewConnectSQLite opens (or creates) an embedded SQLite database at
// cfg.Path and returns the wrapped [DB]. An empty path selects an in-memory
// database, useful for local development.
func NewConnectSQLite(ctx context.Context, cfg config.SQLite, log *logger.Logger) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// SQLite handles a single writer; keep the pool at one connection to
	// avoid database-is-locked churn.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting sqlite database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("opened sqlite database")

	return &DB{
		DB:          conn,
		placeholder: sq.Question,
		classifier:  NewSQLiteErrorClassifier(),
		logger:      log,
	}, nil
}
