// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package resolver

import (
	"reflect"

	"github.com/tbessonov/go-field-vault/internal/metadata"
	"github.com/tbessonov/go-field-vault/models"
)

// DefaultNotSelectedLabel is rendered for empty reference fields when no
// custom sentinel is configured.
const DefaultNotSelectedLabel = "not selected"

// Candidates maps a target type name to its pre-fetched candidate set
// (entity id to entity). Supplied by the caller; the resolver never loads
// anything on its own.
type Candidates map[string]map[string]any

// Resolver resolves the lookup-reference fields of entities against
// pre-fetched candidate sets. Stateless apart from its collaborators; safe
// for concurrent use.
type Resolver struct {
	registry    *metadata.Registry
	notSelected string
}

// NewResolver constructs a [Resolver]. An empty notSelectedLabel selects
// [DefaultNotSelectedLabel].
func NewResolver(registry *metadata.Registry, notSelectedLabel string) *Resolver {
	if notSelectedLabel == "" {
		notSelectedLabel = DefaultNotSelectedLabel
	}
	return &Resolver{registry: registry, notSelected: notSelectedLabel}
}

// Resolve produces one [models.ResolvedReference] per lookup field per
// entity, in input order. Lookup outcomes are never errors: referential
// integrity is the store's concern, and a missing target or missing
// candidate set degrades to the raw identifier as the label. The only error
// source is marker registration itself.
func (r *Resolver) Resolve(entities []any, candidates Candidates) ([]models.ResolvedReference, error) {
	var refs []models.ResolvedReference

	for _, entity := range entities {
		desc, err := r.registry.Describe(entity)
		if err != nil {
			return nil, err
		}

		v := structValue(entity)
		sourceID := stringField(v, "ID")

		for _, spec := range desc.LookupFields() {
			ref := models.ResolvedReference{
				SourceType: desc.TypeName,
				SourceID:   sourceID,
				Field:      spec.Name,
			}

			id := stringField(v, spec.Name)
			if id == "" {
				ref.Label = r.notSelected
				refs = append(refs, ref)
				continue
			}

			ref.TargetID = id
			ref.Label = id // fallback of last resort: the raw identifier

			if target, found := candidates[spec.Target][id]; found {
				if label := displayLabel(target); label != "" {
					ref.Label = label
				}
			}

			refs = append(refs, ref)
		}
	}

	return refs, nil
}

// displayLabel renders a candidate entity: breadcrumb first, then name.
// Returns "" when the target offers neither, leaving the raw id in place.
func displayLabel(target any) string {
	v := structValue(target)
	if !v.IsValid() {
		return ""
	}

	if breadcrumb := stringField(v, "Breadcrumb"); breadcrumb != "" {
		return breadcrumb
	}
	return stringField(v, "Name")
}

func structValue(entity any) reflect.Value {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v
}

func stringField(v reflect.Value, name string) string {
	if !v.IsValid() {
		return ""
	}
	f := v.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}
