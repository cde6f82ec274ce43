package metadata

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markedEntity struct {
	ID     string
	Secret string  `vault:"encrypted"`
	Hint   *string `vault:"encrypted"`
	UnitID string  `vault:"lookup=Unit"`

	unexported string `vault:"encrypted"` //nolint:unused // must be skipped, not rejected
}

type unmarkedEntity struct {
	ID   string
	Name string
}

func TestRegistry_Describe_MarkedFields(t *testing.T) {
	r := NewRegistry()

	d, err := r.Describe(markedEntity{})
	require.NoError(t, err)

	assert.Equal(t, "markedEntity", d.TypeName)
	assert.True(t, d.HasMarkers())

	require.Len(t, d.Fields, 3)
	assert.Equal(t, []FieldSpec{
		{Owner: "markedEntity", Name: "Secret", Kind: KindEncrypted},
		{Owner: "markedEntity", Name: "Hint", Kind: KindEncrypted},
	}, d.EncryptedFields())
	assert.Equal(t, []FieldSpec{
		{Owner: "markedEntity", Name: "UnitID", Kind: KindLookup, Target: "Unit"},
	}, d.LookupFields())
}

func TestRegistry_Describe_PointerAndValueShareDescriptor(t *testing.T) {
	r := NewRegistry()

	d1, err := r.Describe(&markedEntity{})
	require.NoError(t, err)
	d2, err := r.Describe(markedEntity{})
	require.NoError(t, err)

	// Same cached descriptor, computed once.
	assert.Same(t, d1, d2)
}

func TestRegistry_Describe_NoMarkers(t *testing.T) {
	r := NewRegistry()

	d, err := r.Describe(unmarkedEntity{})
	require.NoError(t, err)

	assert.False(t, d.HasMarkers())
	assert.Empty(t, d.EncryptedFields())
	assert.Empty(t, d.LookupFields())
}

func TestRegistry_Describe_MarkerErrors(t *testing.T) {
	type conflicting struct {
		V string `vault:"encrypted,lookup=Unit"`
	}
	type encryptedInt struct {
		V int `vault:"encrypted"`
	}
	type lookupPtr struct {
		V *string `vault:"lookup=Unit"`
	}
	type unknownMarker struct {
		V string `vault:"hashed"`
	}
	type emptyTarget struct {
		V string `vault:"lookup="`
	}

	tests := []struct {
		name    string
		entity  any
		wantErr error
	}{
		{name: "both markers on one field", entity: conflicting{}, wantErr: ErrConflictingFieldMarkers},
		{name: "encrypted on non-string", entity: encryptedInt{}, wantErr: ErrInvalidMarkerTarget},
		{name: "lookup on pointer field", entity: lookupPtr{}, wantErr: ErrInvalidMarkerTarget},
		{name: "unknown marker value", entity: unknownMarker{}, wantErr: ErrUnknownFieldMarker},
		{name: "empty lookup target", entity: emptyTarget{}, wantErr: ErrUnknownFieldMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()

			d, err := r.Describe(tt.entity)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, d)

			// Registration errors abort registration entirely: the failure is
			// reported again on the next call instead of a partial descriptor.
			_, err = r.Describe(tt.entity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_Describe_NotAStruct(t *testing.T) {
	r := NewRegistry()

	for _, v := range []any{nil, 42, "text", []string{"a"}} {
		_, err := r.Describe(v)
		assert.ErrorIs(t, err, ErrNotAStruct)
	}
}

func TestRegistry_Describe_ConcurrentFirstAccess(t *testing.T) {
	r := NewRegistry()

	const goroutines = 32
	descriptors := make([]*Descriptor, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			descriptors[i], errs[i] = r.Describe(&markedEntity{})
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
	}

	// Exactly one registration wins; every caller observes the same complete
	// descriptor.
	for i := 1; i < goroutines; i++ {
		assert.Same(t, descriptors[0], descriptors[i])
	}
}

func TestTypeNameOf(t *testing.T) {
	assert.Equal(t, "markedEntity", TypeNameOf(markedEntity{}))
	assert.Equal(t, "markedEntity", TypeNameOf(&markedEntity{}))
	assert.Equal(t, "", TypeNameOf(nil))
}
