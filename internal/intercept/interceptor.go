// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package intercept

import (
	"fmt"
	"reflect"

	"github.com/tbessonov/go-field-vault/internal/crypto"
	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/internal/metadata"
)

// LegacyPlaintextPolicy decides what AfterLoad does with a stored value that
// is not in envelope form — typically data written before encryption was
// enabled.
type LegacyPlaintextPolicy string

const (
	// LegacyPassthrough leaves non-envelope values untouched on load.
	LegacyPassthrough LegacyPlaintextPolicy = "passthrough"

	// LegacyReject fails the load of a non-envelope value with a
	// [FieldDecryptionError] wrapping [ErrLegacyPlaintext].
	LegacyReject LegacyPlaintextPolicy = "reject"
)

// ParseLegacyPolicy validates a configured policy string.
func ParseLegacyPolicy(s string) (LegacyPlaintextPolicy, error) {
	switch LegacyPlaintextPolicy(s) {
	case LegacyPassthrough, LegacyReject:
		return LegacyPlaintextPolicy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLegacyPolicy, s)
	}
}

// Interceptor transforms marked entity fields on the store/load boundary.
// It is stateless apart from its collaborators and safe for concurrent use.
type Interceptor struct {
	registry *metadata.Registry
	cipher   crypto.CipherProvider
	keys     crypto.KeyProvider
	legacy   LegacyPlaintextPolicy
	logger   *logger.Logger
}

// NewInterceptor constructs an [Interceptor].
func NewInterceptor(
	registry *metadata.Registry,
	cipher crypto.CipherProvider,
	keys crypto.KeyProvider,
	legacy LegacyPlaintextPolicy,
	log *logger.Logger,
) *Interceptor {
	return &Interceptor{
		registry: registry,
		cipher:   cipher,
		keys:     keys,
		legacy:   legacy,
		logger:   log,
	}
}

// BeforeStore encrypts every marked field of entity in place. entity must be
// a non-nil pointer to a struct.
//
// Per field: a nil *string passes through (absent values produce no
// envelope); a value already in envelope form passes through verbatim, so
// re-storing a loaded-but-unchanged record never double-encrypts; everything
// else — including the empty string — is sealed and replaced with the
// envelope's stored form. Unmarked fields are never touched.
func (in *Interceptor) BeforeStore(entity any) error {
	target, desc, err := in.describe(entity)
	if err != nil {
		return err
	}

	specs := desc.EncryptedFields()
	if len(specs) == 0 {
		return nil
	}

	key, err := in.keys.CurrentKey()
	if err != nil {
		return fmt.Errorf("obtain encryption key: %w", err)
	}

	for _, spec := range specs {
		value, present := fieldValue(target, spec.Name)
		if !present {
			continue
		}
		if crypto.IsEnvelope(value) {
			continue
		}

		env, err := in.cipher.Encrypt(value, key)
		if err != nil {
			return fmt.Errorf("encrypt field %s.%s: %w", desc.TypeName, spec.Name, err)
		}

		setFieldValue(target, spec.Name, env.String())
	}

	return nil
}

// AfterLoad decrypts every marked field of entity in place. entity must be a
// non-nil pointer to a struct.
//
// Per field: a nil *string or empty value passes through; a valid envelope is
// opened and replaced with its plaintext; a non-envelope value is handled by
// the configured [LegacyPlaintextPolicy]. Corrupted envelopes and
// authentication failures surface as a [FieldDecryptionError] carrying the
// entity and field context.
func (in *Interceptor) AfterLoad(entity any) error {
	target, desc, err := in.describe(entity)
	if err != nil {
		return err
	}

	specs := desc.EncryptedFields()
	if len(specs) == 0 {
		return nil
	}

	var key []byte

	for _, spec := range specs {
		value, present := fieldValue(target, spec.Name)
		if !present || value == "" {
			continue
		}

		if !crypto.IsEnvelope(value) {
			if in.legacy == LegacyReject {
				return in.fieldError(target, desc.TypeName, spec.Name, ErrLegacyPlaintext)
			}
			// LegacyPassthrough: pre-encryption data stays as is.
			continue
		}

		env, err := crypto.ParseEnvelope(value)
		if err != nil {
			return in.fieldError(target, desc.TypeName, spec.Name, err)
		}

		if key == nil {
			key, err = in.keys.CurrentKey()
			if err != nil {
				return fmt.Errorf("obtain encryption key: %w", err)
			}
		}

		plaintext, err := in.cipher.Decrypt(env, key)
		if err != nil {
			return in.fieldError(target, desc.TypeName, spec.Name, err)
		}

		setFieldValue(target, spec.Name, plaintext)
	}

	return nil
}

// describe validates the entity shape and returns its addressable struct
// value together with the cached descriptor.
func (in *Interceptor) describe(entity any) (reflect.Value, *metadata.Descriptor, error) {
	v := reflect.ValueOf(entity)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("%w: %T", ErrEntityNotPointer, entity)
	}

	desc, err := in.registry.Describe(entity)
	if err != nil {
		return reflect.Value{}, nil, err
	}

	return v.Elem(), desc, nil
}

func (in *Interceptor) fieldError(target reflect.Value, typeName, fieldName string, cause error) error {
	err := &FieldDecryptionError{
		EntityType: typeName,
		EntityID:   entityID(target),
		Field:      fieldName,
		Err:        cause,
	}

	in.logger.Error().
		Str("entity_type", err.EntityType).
		Str("entity_id", err.EntityID).
		Str("field", err.Field).
		Err(cause).
		Msg("field decryption failed")

	return err
}

// fieldValue reads a marked string or *string field. present is false for a
// nil *string.
func fieldValue(target reflect.Value, name string) (value string, present bool) {
	f := target.FieldByName(name)

	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return "", false
		}
		return f.Elem().String(), true
	}

	return f.String(), true
}

// setFieldValue writes a marked string or *string field. The registry has
// already validated the field type at registration time.
func setFieldValue(target reflect.Value, name, value string) {
	f := target.FieldByName(name)

	if f.Kind() == reflect.Pointer {
		f.Set(reflect.ValueOf(&value))
		return
	}

	f.SetString(value)
}

// entityID extracts the entity's id for error context, by convention the
// exported string field "ID". Missing ids degrade to an empty string rather
// than failing the error path itself.
func entityID(target reflect.Value) string {
	f := target.FieldByName("ID")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}
