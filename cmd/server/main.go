package main

import (
	"context"
	"fmt"

	"github.com/tbessonov/go-field-vault/internal/adapter"
	"github.com/tbessonov/go-field-vault/internal/config"
	"github.com/tbessonov/go-field-vault/internal/crypto"
	myHTTP "github.com/tbessonov/go-field-vault/internal/handler/http"
	"github.com/tbessonov/go-field-vault/internal/index"
	"github.com/tbessonov/go-field-vault/internal/intercept"
	"github.com/tbessonov/go-field-vault/internal/logger"
	"github.com/tbessonov/go-field-vault/internal/metadata"
	"github.com/tbessonov/go-field-vault/internal/resolver"
	"github.com/tbessonov/go-field-vault/internal/server"
	"github.com/tbessonov/go-field-vault/internal/store"
	"github.com/tbessonov/go-field-vault/internal/workers"
	"github.com/tbessonov/go-field-vault/models"
)

const defaultKeyEnvVar = "VAULT_MASTER_KEY"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("field-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	keys, err := newKeyProvider(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key provider")
	}

	legacy := intercept.LegacyPassthrough
	if cfg.App.LegacyPlaintext != "" {
		if legacy, err = intercept.ParseLegacyPolicy(cfg.App.LegacyPlaintext); err != nil {
			log.Fatal().Err(err).Msg("error parsing legacy plaintext policy")
		}
	}

	registry := metadata.NewRegistry()
	interceptor := intercept.NewInterceptor(registry, crypto.NewAESGCMProvider(), keys, legacy, log)

	types := store.NewTypeRegistry()
	types.Register("Employee", func() any { return &models.Employee{} })
	types.Register("Contract", func() any { return &models.Contract{} })
	types.Register("Department", func() any { return &models.Department{} })
	types.Register("Counterparty", func() any { return &models.Counterparty{} })
	entityTypes := []string{"Employee", "Contract", "Department", "Counterparty"}

	ctx := context.Background()
	repository, closeStore, err := newRepository(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating document repository")
	}

	storage := store.NewDocumentStorage(repository, interceptor, types, log)

	// Candidates come from the local store unless a remote vault is
	// configured.
	var loader resolver.CandidateLoader = storage
	if cfg.Adapter.BaseURL != "" {
		loader = adapter.NewHTTPCandidateClient(adapter.HTTPClientConfig{
			BaseURL: cfg.Adapter.BaseURL,
			Timeout: cfg.Adapter.RequestTimeout,
		}, types)
		log.Info().Str("base_url", cfg.Adapter.BaseURL).Msg("resolving candidates against remote vault")
	}

	res := resolver.NewResolver(registry, cfg.App.NotSelectedLabel)
	projector := index.NewProjector(storage, loader, repository, registry, res, log)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	projectionWorker := workers.NewProjectionWorker(
		projector,
		entityTypes,
		cfg.Workers.ProjectionInterval,
		logger.NewLogger("projection-worker"),
	)
	workers.NewWorkers(projectionWorker).Run(workersCtx)

	handler := myHTTP.NewHandler(storage, projector, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, func() {
		stopWorkers()
		closeStore()
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newKeyProvider selects the master-key source from the app configuration.
func newKeyProvider(cfg config.App) (crypto.KeyProvider, error) {
	switch cfg.KeySource {
	case config.KeySourcePassphrase:
		return crypto.NewPassphraseKeyProvider(cfg.Passphrase, []byte(cfg.KeySalt))
	default:
		envVar := cfg.KeyEnvVar
		if envVar == "" {
			envVar = defaultKeyEnvVar
		}
		return crypto.NewEnvKeyProvider(envVar), nil
	}
}

// newRepository opens the configured storage backend, runs migrations where
// a database is involved and returns the repository together with a close
// function for shutdown.
func newRepository(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.DocumentRepository, func(), error) {
	switch cfg.Engine {
	case config.EnginePostgres:
		db, err := store.NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate("pgx"); err != nil {
			return nil, nil, err
		}
		return store.NewDocumentRepository(db, log), func() { db.Close() }, nil

	case config.EngineSQLite:
		db, err := store.NewConnectSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate("sqlite3"); err != nil {
			return nil, nil, err
		}
		return store.NewDocumentRepository(db, log), func() { db.Close() }, nil

	default:
		log.Info().Msg("using in-memory document repository")
		return store.NewMemoryRepository(), func() {}, nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
