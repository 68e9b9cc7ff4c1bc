package server

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/handler"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/workers"
)

type server struct {
	httpServer *httpServer

	// workers run until the server stops.
	workers *workers.Workers

	// closers are released in order after the HTTP server has stopped.
	closers []io.Closer

	logger *logger.Logger
}

// NewServer builds the HTTP server. background runs next to the listener and
// is stopped with it. closers (database, AI client) are closed once the
// server and its workers have shut down.
func NewServer(
	handlers *handler.Handlers,
	background *workers.Workers,
	cfg config.Server,
	logger *logger.Logger,
	closers ...io.Closer,
) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(cfg.RequestTimeout), cfg, logger),
		workers:    background,
		closers:    closers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) run(ctx context.Context) {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(workersCtx)
		}
	}()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.httpServer.Shutdown()
		<-stopped
	case <-stopped:
		// listener failed; stop the rest anyway
	}

	stopWorkers()
	<-workersDone
	s.release()

	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	s.release()
}

func (s *server) release() {
	for _, c := range s.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			s.logger.Err(err).Msg("error releasing resource")
		}
	}
	s.closers = nil
}
