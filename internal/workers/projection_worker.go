// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package workers

import (
	"context"
	"time"

	"github.com/tbessonov/go-field-vault/internal/logger"
)

// Rebuilder rebuilds reference indexes. Implemented by the index projector.
type Rebuilder interface {
	RebuildAll(ctx context.Context, entityTypes []string) error
}

// ProjectionWorker periodically rebuilds the reference index of every
// registered entity type, so labels in list views catch up with renamed or
// moved lookup targets.
type ProjectionWorker struct {
	rebuilder   Rebuilder
	entityTypes []string
	interval    time.Duration
	logger      *logger.Logger
}

// NewProjectionWorker constructs a [ProjectionWorker]. A zero interval
// disables the worker.
func NewProjectionWorker(rebuilder Rebuilder, entityTypes []string, interval time.Duration, log *logger.Logger) *ProjectionWorker {
	return &ProjectionWorker{
		rebuilder:   rebuilder,
		entityTypes: entityTypes,
		interval:    interval,
		logger:      log,
	}
}

// Run implements [Worker]. The first rebuild happens immediately, then once
// per interval until ctx ends.
func (w *ProjectionWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("projection worker disabled")
		return
	}

	go func() {
		w.rebuild(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("projection worker stopped")
				return
			case <-ticker.C:
				w.rebuild(ctx)
			}
		}
	}()
}

func (w *ProjectionWorker) rebuild(ctx context.Context) {
	if err := w.rebuilder.RebuildAll(ctx, w.entityTypes); err != nil {
		w.logger.Error().Err(err).Msg("projection rebuild failed")
		return
	}
	w.logger.Debug().Int("entity_types", len(w.entityTypes)).Msg("projection rebuild cycle finished")
}
