// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package resolver

import (
	"context"
	"fmt"

	"github.com/tbessonov/go-field-vault/internal/metadata"
)

//go:generate mockgen -source=candidates.go -destination=../mock/candidate_loader_mock.go -package=mock

// CandidateLoader fetches the candidate set for one target type in a single
// call. Implemented by the document store (server side) and by the HTTP
// candidate client (UI side).
type CandidateLoader interface {
	// LoadCandidates returns the entities of targetType with the given ids,
	// keyed by id. Unknown ids are simply absent from the result.
	LoadCandidates(ctx context.Context, targetType string, ids []string) (map[string]any, error)
}

// Prefetch gathers the referenced target ids of all entities and loads each
// referenced target type exactly once. The returned [Candidates] is ready to
// pass to [Resolver.Resolve]; batching here is what keeps resolving N
// entities at one fetch per target type instead of N.
func Prefetch(ctx context.Context, loader CandidateLoader, registry *metadata.Registry, entities []any) (Candidates, error) {
	idsByType := make(map[string][]string)
	seen := make(map[string]map[string]struct{})

	for _, entity := range entities {
		desc, err := registry.Describe(entity)
		if err != nil {
			return nil, err
		}

		v := structValue(entity)
		for _, spec := range desc.LookupFields() {
			id := stringField(v, spec.Name)
			if id == "" {
				continue
			}

			if seen[spec.Target] == nil {
				seen[spec.Target] = make(map[string]struct{})
			}
			if _, dup := seen[spec.Target][id]; dup {
				continue
			}
			seen[spec.Target][id] = struct{}{}
			idsByType[spec.Target] = append(idsByType[spec.Target], id)
		}
	}

	candidates := make(Candidates, len(idsByType))
	for targetType, ids := range idsByType {
		set, err := loader.LoadCandidates(ctx, targetType, ids)
		if err != nil {
			return nil, fmt.Errorf("load candidates for %s: %w", targetType, err)
		}
		candidates[targetType] = set
	}

	return candidates, nil
}
