package http

import (
	"github.com/tbessonov/go-field-vault/internal/index"
	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/internal/store"
)

type Handler struct {
	storage   *store.DocumentStorage
	projector *index.Projector
	version   string

	logger *logger.Logger
}

func NewHandler(storage *store.DocumentStorage, projector *index.Projector, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		storage:   storage,
		projector: projector,
		version:   version,
		logger:    logger,
	}
}
