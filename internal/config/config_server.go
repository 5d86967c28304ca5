// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// DefaultPageSize is used when a listing names a page but not its size.
const DefaultPageSize = 20

// ServerConfig holds the configuration settings for the server.
type ServerConfig struct {
	Addr            string // Server address
	Logger          *zap.SugaredLogger
	StoreInterval   int    // Interval for storing metrics to file (in seconds)
	FileStoragePath string // Path to the file for metric storage
	Restore         bool   // Whether to restore metrics from file on startup
	DatabaseDsn     string // Data Source Name for PostgreSQL
	DefaultPageSize int    // Page size when only a page number is requested
	ShutdownTimeout int    // Graceful shutdown timeout (in seconds)
}

type serverEnv struct {
	Addr            string `env:"ADDRESS"`
	StoreInterval   int    `env:"STORE_INTERVAL"`
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	Restore         bool   `env:"RESTORE"`
	DatabaseDsn     string `env:"DATABASE_DSN"`
	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT"`
}

// NewServerConfig creates and returns a new ServerConfig by parsing flags and environment variables.
func NewServerConfig() *ServerConfig {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}
	logger := zap.Must(logCfg.Build())

	// 0) defaults
	cfg := &ServerConfig{
		Addr:            "localhost:8080",
		StoreInterval:   300,
		FileStoragePath: "./tmp/metrics-db.json",
		Restore:         true,
		DefaultPageSize: DefaultPageSize,
		ShutdownTimeout: 10,
	}

	// 1) flags
	fAddr := strFlag{v: cfg.Addr}
	fStoreI := intFlag{v: cfg.StoreInterval}
	fFile := strFlag{v: cfg.FileStoragePath}
	fRestore := boolFlag{v: cfg.Restore}
	fPageSize := intFlag{v: cfg.DefaultPageSize}
	fShutdown := intFlag{v: cfg.ShutdownTimeout}
	var fDSN strFlag
	var fConf strFlag // -c / -config

	flag.Var(&fAddr, "a", "HTTP server address")
	flag.Var(&fStoreI, "i", "store interval (seconds)")
	flag.Var(&fFile, "f", "path to metrics file")
	flag.Var(&fRestore, "r", "restore from file")
	flag.Var(&fDSN, "d", "DB connection string")
	flag.Var(&fPageSize, "s", "default page size")
	flag.Var(&fShutdown, "st", "shutdown timeout (seconds)")
	flag.Var(&fConf, "c", "Path to JSON config file")
	flag.Var(&fConf, "config", "Path to JSON config file (alias)")
	flag.Parse()

	cfg.Addr = fAddr.v
	cfg.StoreInterval = fStoreI.v
	cfg.FileStoragePath = fFile.v
	cfg.Restore = fRestore.v
	cfg.DatabaseDsn = fDSN.v
	cfg.DefaultPageSize = fPageSize.v
	cfg.ShutdownTimeout = fShutdown.v

	// 2) JSON (lowest priority)
	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}

	if fConf.v != "" {
		if js, err := loadServerJSON(fConf.v); err == nil {
			if js.Address != nil && !fAddr.set {
				cfg.Addr = *js.Address
			}
			if js.Restore != nil && !fRestore.set {
				cfg.Restore = *js.Restore
			}
			if js.StoreInterval != nil && !fStoreI.set {
				if sec, err := parseDurationSeconds(*js.StoreInterval); err == nil {
					cfg.StoreInterval = sec
				}
			}
			if js.StoreFile != nil && !fFile.set {
				cfg.FileStoragePath = *js.StoreFile
			}
			if js.DatabaseDSN != nil && !fDSN.set {
				cfg.DatabaseDsn = *js.DatabaseDSN
			}
			if js.DefaultPageSize != nil && !fPageSize.set {
				cfg.DefaultPageSize = *js.DefaultPageSize
			}
			if js.ShutdownTimeout != nil && !fShutdown.set {
				if sec, err := parseDurationSeconds(*js.ShutdownTimeout); err == nil {
					cfg.ShutdownTimeout = sec
				}
			}
		} else {
			logger.Sugar().Warnw("failed to load config file", "path", fConf.v, "error", err)
		}
	}

	// 3) environment (highest priority)
	if err := readServerEnvironment(cfg); err != nil {
		logger.Sugar().Warnw("ignoring malformed environment variables", "error", err)
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = DefaultPageSize
	}

	cfg.Logger = logger.Sugar()
	return cfg
}

func readServerEnvironment(cfg *ServerConfig) error {
	e := serverEnv{
		Addr:            cfg.Addr,
		StoreInterval:   cfg.StoreInterval,
		FileStoragePath: cfg.FileStoragePath,
		Restore:         cfg.Restore,
		DatabaseDsn:     cfg.DatabaseDsn,
		DefaultPageSize: cfg.DefaultPageSize,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}

	// Malformed variables are reported but do not discard the ones that parsed.
	err := env.Parse(&e)

	cfg.Addr = e.Addr
	cfg.StoreInterval = e.StoreInterval
	cfg.FileStoragePath = e.FileStoragePath
	cfg.Restore = e.Restore
	cfg.DatabaseDsn = e.DatabaseDsn
	cfg.DefaultPageSize = e.DefaultPageSize
	cfg.ShutdownTimeout = e.ShutdownTimeout
	return err
}
