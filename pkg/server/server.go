package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/catalog-atlas/pkg/handlers/catalog"
	catalogmiddleware "github.com/de-tools/catalog-atlas/pkg/server/middleware"
	"github.com/de-tools/catalog-atlas/pkg/services/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// WebAPI serves the catalog reports over HTTP. The dataset behind the
// analyzer is loaded once before construction and is read-only, so the
// handlers need no locking.
type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Analyzer *catalog.Analyzer
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// ConfigureRouter builds the catalog API routes. Split out so tests can
// exercise the router without binding a socket.
func ConfigureRouter(logger zerolog.Logger, deps Dependencies) *chi.Mux {
	catalogHandler := handlers.NewHandler(deps.Analyzer)

	router := chi.NewRouter()

	router.Use(catalogmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/summary", catalogHandler.GetSummary)
		r.Get("/years", catalogHandler.GetYears)
		r.Get("/os", catalogHandler.GetOsReport)
	})

	return router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
