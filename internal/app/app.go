package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/georgemunganga/pcstore/internal/modules/inventory"
	"github.com/georgemunganga/pcstore/internal/modules/storage"
	"github.com/georgemunganga/pcstore/internal/platform/config"
	"github.com/georgemunganga/pcstore/internal/platform/logx"
)

const shutdownTimeout = 10 * time.Second

// App owns the opened store and the services built on it.
type App struct {
	Config  config.Config
	Service inventory.Service

	store storage.Store
}

// New opens the configured store and wires the inventory service onto it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	repo := inventory.NewDocumentRepository(store, cfg.Storage)
	return &App{
		Config:  cfg,
		Service: inventory.NewService(repo),
		store:   store,
	}, nil
}

func (a *App) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logx.RequestLogger())
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	inventory.NewHandler(a.Service).RegisterRoutes(router)
	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logx.Info().Str("addr", srv.Addr).Str("driver", a.Config.Storage.Driver).Msg("PC Store server starting")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logx.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) Close() error {
	return a.store.Close()
}
