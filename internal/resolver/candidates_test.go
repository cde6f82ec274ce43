package resolver_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbessonov/go-field-vault/internal/metadata"
	"github.com/tbessonov/go-field-vault/internal/resolver"
	"github.com/tbessonov/go-field-vault/models"
)

// countingLoader records every LoadCandidates call so tests can assert the
// batch contract: one fetch per referenced target type, regardless of how
// many entities reference it.
type countingLoader struct {
	calls   map[string]int
	idsSeen map[string][]string
	sets    map[string]map[string]any
}

func newCountingLoader(sets map[string]map[string]any) *countingLoader {
	return &countingLoader{
		calls:   make(map[string]int),
		idsSeen: make(map[string][]string),
		sets:    sets,
	}
}

func (l *countingLoader) LoadCandidates(_ context.Context, targetType string, ids []string) (map[string]any, error) {
	l.calls[targetType]++
	l.idsSeen[targetType] = append(l.idsSeen[targetType], ids...)
	return l.sets[targetType], nil
}

func TestPrefetch_OneFetchPerTargetType(t *testing.T) {
	registry := metadata.NewRegistry()

	// 100 employees all referencing departments; sprinkled over 3 ids.
	entities := make([]any, 0, 100)
	for i := 0; i < 100; i++ {
		entities = append(entities, &models.Employee{
			ID:           fmt.Sprintf("emp-%d", i),
			DepartmentID: fmt.Sprintf("dep-%d", i%3),
		})
	}

	loader := newCountingLoader(map[string]map[string]any{
		"Department": {
			"dep-0": &models.Department{ID: "dep-0", Name: "IT"},
			"dep-1": &models.Department{ID: "dep-1", Name: "HR"},
			"dep-2": &models.Department{ID: "dep-2", Name: "Legal"},
		},
	})

	candidates, err := resolver.Prefetch(context.Background(), loader, registry, entities)
	require.NoError(t, err)

	// 100 entities, one target type, exactly one fetch.
	assert.Equal(t, 1, loader.calls["Department"])

	// Referenced ids are deduplicated before the fetch.
	ids := loader.idsSeen["Department"]
	sort.Strings(ids)
	assert.Equal(t, []string{"dep-0", "dep-1", "dep-2"}, ids)

	// The prefetched map resolves without further loads.
	r := resolver.NewResolver(registry, "")
	refs, err := r.Resolve(entities, candidates)
	require.NoError(t, err)
	require.Len(t, refs, 100)
	for _, ref := range refs {
		assert.Contains(t, []string{"IT", "HR", "Legal"}, ref.Label)
	}
	assert.Equal(t, 1, loader.calls["Department"], "resolving must not trigger additional fetches")
}

func TestPrefetch_OneFetchPerTypeAcrossMixedEntities(t *testing.T) {
	registry := metadata.NewRegistry()

	entities := []any{
		&models.Employee{ID: "emp-1", DepartmentID: "dep-1"},
		&models.Contract{ID: "con-1", CounterpartyID: "cp-1", DepartmentID: "dep-1"},
		&models.Contract{ID: "con-2", CounterpartyID: "cp-2", DepartmentID: "dep-2"},
	}

	loader := newCountingLoader(map[string]map[string]any{})

	_, err := resolver.Prefetch(context.Background(), loader, registry, entities)
	require.NoError(t, err)

	assert.Equal(t, 1, loader.calls["Department"])
	assert.Equal(t, 1, loader.calls["Counterparty"])
}

func TestPrefetch_SkipsEmptyReferences(t *testing.T) {
	registry := metadata.NewRegistry()

	entities := []any{
		&models.Employee{ID: "emp-1", DepartmentID: ""},
		&models.Employee{ID: "emp-2", DepartmentID: ""},
	}

	loader := newCountingLoader(nil)

	candidates, err := resolver.Prefetch(context.Background(), loader, registry, entities)
	require.NoError(t, err)

	assert.Empty(t, candidates)
	assert.Empty(t, loader.calls, "nothing referenced, nothing fetched")
}
