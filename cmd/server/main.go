package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/counters-admin/internal/buildinfo"
	"github.com/and161185/counters-admin/internal/config"
	"github.com/and161185/counters-admin/internal/server"
	"github.com/and161185/counters-admin/storage/inmemory"
	"github.com/and161185/counters-admin/storage/postgres"
)

func main() {
	buildinfo.PrintBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewServerConfig()
	defer func() { _ = config.Logger.Sync() }()

	var storage server.Storage
	if config.DatabaseDsn != "" {
		pg, err := postgres.NewPostgresStorage(ctx, config.DatabaseDsn)
		if err != nil {
			config.Logger.Fatalw("failed to open postgres storage", "error", err)
		}
		defer pg.Close()
		storage = pg
	} else {
		storage = inmemory.NewMemStorage(ctx)
	}

	config.Logger.Infow("server config",
		"addr", config.Addr,
		"storeInterval", config.StoreInterval,
		"fileStoragePath", config.FileStoragePath,
		"restore", config.Restore,
		"databaseDsnSet", config.DatabaseDsn != "",
		"defaultPageSize", config.DefaultPageSize,
		"shutdownTimeout", config.ShutdownTimeout,
	)

	srv := server.NewServer(storage, config)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}
