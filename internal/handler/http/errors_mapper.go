package http

import (
	"errors"
	"net/http"

	"github.com/tbessonov/go-field-vault/internal/crypto"
	"github.com/tbessonov/go-field-vault/internal/intercept"
	"github.com/tbessonov/go-field-vault/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrDocumentNotFound:  http.StatusNotFound,
	store.ErrUnknownEntityType: http.StatusBadRequest,
	store.ErrMissingDocumentID: http.StatusBadRequest,
	store.ErrDocumentNotSaved:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,

	// A stored value that cannot be decrypted is server state the client
	// cannot repair.
	intercept.ErrLegacyPlaintext:   http.StatusInternalServerError,
	crypto.ErrAuthenticationFailed: http.StatusInternalServerError,
	crypto.ErrMalformedEnvelope:    http.StatusInternalServerError,
	crypto.ErrKeyNotConfigured:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
