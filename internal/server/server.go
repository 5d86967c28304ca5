// Package server exposes the counters administration API over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/and161185/counters-admin/internal/config"
	"github.com/and161185/counters-admin/internal/counters"
	"github.com/and161185/counters-admin/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Storage is the metric store the server reads counters from.
type Storage interface {
	counters.MetricSource
	Ping(ctx context.Context) error
}

// FileStore is implemented by stores that persist themselves to a file.
type FileStore interface {
	SaveToFile(ctx context.Context, filePath string) error
	LoadFromFile(ctx context.Context, filePath string) error
}

type Server struct {
	Storage   Storage
	FileStore FileStore
	Counters  *counters.Service
	Config    *config.ServerConfig
}

// NewServer wires the counters service over storage. If storage can persist
// itself to a file it is also used as the FileStore.
func NewServer(storage Storage, config *config.ServerConfig) *Server {
	srv := &Server{
		Storage:  storage,
		Counters: counters.NewService(storage),
		Config:   config,
	}
	if fs, ok := storage.(FileStore); ok {
		srv.FileStore = fs
	}
	return srv
}

// Router builds the HTTP handler with all routes and middleware.
func (srv *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.Recoverer)
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.logger()))
	router.Use(middleware.CompressMiddleware)

	router.Route("/metrics/counters", func(r chi.Router) {
		r.Get("/", srv.ListCountersHandler)
		r.Get("/{name}", srv.DisplayCounterHandler)
		r.Delete("/{name}", srv.DeleteCounterHandler)
	})
	router.Get("/ping", srv.PingHandler)

	return router
}

// Run serves HTTP until ctx is done, then shuts down gracefully.
// When a FileStore is present it is restored on start, saved every
// StoreInterval seconds and saved once more after shutdown.
func (srv *Server) Run(ctx context.Context) error {
	logger := srv.logger()

	if srv.persistent() && srv.Config.Restore {
		if err := srv.FileStore.LoadFromFile(ctx, srv.Config.FileStoragePath); err != nil {
			logger.Errorw("failed to restore metrics", "path", srv.Config.FileStoragePath, "error", err)
		}
	}

	httpSrv := &http.Server{
		Addr:    srv.Config.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Infow("server started", "addr", srv.Config.Addr)

	var tick <-chan time.Time
	if srv.persistent() && srv.Config.StoreInterval > 0 {
		ticker := time.NewTicker(time.Duration(srv.Config.StoreInterval) * time.Second)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil
		case <-tick:
			srv.save(ctx)
		case <-ctx.Done():
			return srv.shutdown(httpSrv)
		}
	}
}

func (srv *Server) shutdown(httpSrv *http.Server) error {
	logger := srv.logger()

	timeout := time.Duration(srv.Config.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := httpSrv.Shutdown(ctx)
	if err != nil {
		logger.Errorw("graceful shutdown failed", "error", err)
	}
	srv.save(ctx)
	logger.Infow("server stopped")
	return err
}

func (srv *Server) save(ctx context.Context) {
	if !srv.persistent() {
		return
	}
	if err := srv.FileStore.SaveToFile(ctx, srv.Config.FileStoragePath); err != nil {
		srv.logger().Errorw("failed to save metrics", "path", srv.Config.FileStoragePath, "error", err)
	}
}

func (srv *Server) persistent() bool {
	return srv.FileStore != nil && srv.Config != nil && srv.Config.FileStoragePath != ""
}

func (srv *Server) logger() *zap.SugaredLogger {
	if srv.Config == nil || srv.Config.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return srv.Config.Logger
}

func (srv *Server) defaultPageSize() int {
	if srv.Config == nil || srv.Config.DefaultPageSize <= 0 {
		return config.DefaultPageSize
	}
	return srv.Config.DefaultPageSize
}
