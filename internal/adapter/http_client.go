// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tbessonov/go-field-vault/internal/resolver"
	"github.com/tbessonov/go-field-vault/internal/store"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpCandidateClient loads lookup candidates over the vault's REST API.
// Responses are materialised through the shared type registry, so resolved
// candidates carry the same concrete types the local store would produce.
type httpCandidateClient struct {
	client *resty.Client
	types  *store.TypeRegistry
}

// NewHTTPCandidateClient constructs a [resolver.CandidateLoader] over HTTP.
func NewHTTPCandidateClient(cfg HTTPClientConfig, types *store.TypeRegistry) resolver.CandidateLoader {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpCandidateClient{client: cli, types: types}
}

// LoadCandidates implements resolver.CandidateLoader. Unknown ids are absent
// from the result, matching the server's list semantics.
func (h *httpCandidateClient) LoadCandidates(ctx context.Context, targetType string, ids []string) (map[string]any, error) {
	if len(ids) == 0 {
		return map[string]any{}, nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		Get("/api/documents/" + targetType + "/")
	if err != nil {
		return nil, fmt.Errorf("load candidates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rawEntities []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &rawEntities); err != nil {
		return nil, fmt.Errorf("decode candidates response: %w", err)
	}

	candidates := make(map[string]any, len(rawEntities))
	for _, raw := range rawEntities {
		entity, err := h.types.New(targetType)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, entity); err != nil {
			return nil, fmt.Errorf("decode %s candidate: %w", targetType, err)
		}
		if id := candidateID(entity); id != "" {
			candidates[id] = entity
		}
	}

	return candidates, nil
}

// candidateID reads the conventional exported "ID" string field.
func candidateID(entity any) string {
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
