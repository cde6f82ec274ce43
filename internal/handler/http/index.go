// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/models"
)

// getIndex returns the stored projection rows of the path type, the data a
// list view reads to render reference columns.
func (h *Handler) getIndex(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entityType := chi.URLParam(r, "type")

	entries, err := h.projector.Entries(r.Context(), entityType)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getIndex").Msg("error reading index")
		http.Error(w, "error reading index", statusFromError(err))
		return
	}
	if entries == nil {
		entries = []models.IndexEntry{}
	}

	writeJSON(w, log, entries)
}

// rebuildIndex rebuilds the projection of the path type on demand, without
// waiting for the next worker cycle.
func (h *Handler) rebuildIndex(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entityType := chi.URLParam(r, "type")

	if err := h.projector.Rebuild(r.Context(), entityType); err != nil {
		log.Err(err).Str("func", "*Handler.rebuildIndex").Msg("error rebuilding index")
		http.Error(w, "error rebuilding index", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
