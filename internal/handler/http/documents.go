// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tbessonov/go-field-vault/internal/logger"
)

// saveDocument decodes the request body into a fresh entity of the path
// type and stores it. The entity id in the body must match the path id.
func (h *Handler) saveDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entityType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	entity, err := h.storage.Types().New(entityType)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveDocument").Msg("unknown entity type")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := json.NewDecoder(r.Body).Decode(entity); err != nil {
		log.Err(err).Str("func", "*Handler.saveDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if bodyID := entityID(entity); bodyID != "" && bodyID != id {
		log.Error().Str("func", "*Handler.saveDocument").Str("path_id", id).Str("body_id", bodyID).Msg("id mismatch")
		http.Error(w, "entity id does not match url", http.StatusBadRequest)
		return
	}
	setEntityID(entity, id)

	if err := h.storage.Store(r.Context(), entity); err != nil {
		log.Err(err).Str("func", "*Handler.saveDocument").Msg("error storing document")
		http.Error(w, "error storing document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entityType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	entity, err := h.storage.Load(r.Context(), entityType, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Msg("error loading document")
		http.Error(w, "error loading document", statusFromError(err))
		return
	}

	writeJSON(w, log, entity)
}

// listDocuments returns the entities of the path type. An optional ids query
// parameter ("?ids=a,b,c") narrows the result; unknown ids are skipped.
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entityType := chi.URLParam(r, "type")

	var ids []string
	if raw := r.URL.Query().Get("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	entities, err := h.storage.LoadBatch(r.Context(), entityType, ids)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Msg("error listing documents")
		http.Error(w, "error listing documents", statusFromError(err))
		return
	}
	if entities == nil {
		entities = []any{}
	}

	writeJSON(w, log, entities)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entityType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	if err := h.storage.Delete(r.Context(), entityType, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDocument").Msg("error deleting document")
		http.Error(w, "error deleting document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("error encoding response")
	}
}
