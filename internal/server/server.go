package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/tbessonov/go-field-vault/internal/config"
	myHTTP "github.com/tbessonov/go-field-vault/internal/handler/http"
	"github.com/tbessonov/go-field-vault/internal/logger"
)

type server struct {
	httpServer *httpServer
	onShutdown func()
	logger     *logger.Logger
}

// NewServer creates the transport server for the given handler. onShutdown,
// when non-nil, runs after the transports have stopped; it is where the
// caller cancels background workers and closes the store.
func NewServer(handler *myHTTP.Handler, cfg config.Server, onShutdown func(), log *logger.Logger) (Server, error) {
	log.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handler.Init(), cfg, log)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.onShutdown = onShutdown
	servers.logger = log

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	if s.onShutdown != nil {
		s.onShutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
