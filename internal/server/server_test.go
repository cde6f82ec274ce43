// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbessonov/go-field-vault/internal/config"
	"github.com/tbessonov/go-field-vault/internal/logger"
)

func TestNewHTTPServer_AppliesTimeoutHandler(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	srv := newHTTPServer(slow, config.Server{
		HTTPAddress:    "localhost:0",
		RequestTimeout: 10 * time.Millisecond,
	}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewHTTPServer_NoTimeout(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := newHTTPServer(ok, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(nil, config.Server{}, nil, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}
