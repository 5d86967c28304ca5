package config

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the configuration settings for counterctl.
type ClientConfig struct {
	ServerAddr    string // Server address
	ClientTimeout int    // HTTP client timeout (in seconds)
	RetryCount    int    // Retries on transport errors and 5xx responses
}

type clientEnv struct {
	ServerAddr    string `env:"ADDRESS"`
	ClientTimeout int    `env:"CLIENT_TIMEOUT"`
	RetryCount    int    `env:"RETRY_COUNT"`
}

// NewClientConfig creates and returns a new ClientConfig by parsing flags and environment variables.
// Flags the caller registered on flag.CommandLine beforehand are parsed too.
func NewClientConfig() *ClientConfig {
	cfg := &ClientConfig{
		ServerAddr:    "http://localhost:8080",
		ClientTimeout: 10,
		RetryCount:    3,
	}

	var fAddr, fConf strFlag
	var fTO, fRetry intFlag
	flag.Var(&fAddr, "a", "HTTP server address (must include http(s)://)")
	flag.Var(&fTO, "t", "client timeout (seconds)")
	flag.Var(&fRetry, "retries", "retry count")
	flag.Var(&fConf, "c", "Path to JSON config file")
	flag.Var(&fConf, "config", "Path to JSON config file (alias)")
	flag.Parse()

	if fAddr.set {
		cfg.ServerAddr = fAddr.v
	}
	if fTO.set {
		cfg.ClientTimeout = fTO.v
	}
	if fRetry.set {
		cfg.RetryCount = fRetry.v
	}

	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}
	if fConf.v != "" {
		if js, err := loadClientJSON(fConf.v); err == nil {
			if js.Address != nil && !fAddr.set {
				cfg.ServerAddr = *js.Address
			}
			if js.ClientTimeout != nil && !fTO.set {
				if sec, err := parseDurationSeconds(*js.ClientTimeout); err == nil {
					cfg.ClientTimeout = sec
				}
			}
			if js.RetryCount != nil && !fRetry.set {
				cfg.RetryCount = *js.RetryCount
			}
		}
	}

	if err := readClientEnvironment(cfg); err != nil {
		log.Printf("ignoring malformed environment variables: %v", err)
	}

	// normalize address
	if !strings.HasPrefix(cfg.ServerAddr, "http://") && !strings.HasPrefix(cfg.ServerAddr, "https://") {
		cfg.ServerAddr = "http://" + cfg.ServerAddr
	}
	return cfg
}

func readClientEnvironment(cfg *ClientConfig) error {
	e := clientEnv{
		ServerAddr:    cfg.ServerAddr,
		ClientTimeout: cfg.ClientTimeout,
		RetryCount:    cfg.RetryCount,
	}

	err := env.Parse(&e)

	cfg.ServerAddr = e.ServerAddr
	cfg.ClientTimeout = e.ClientTimeout
	cfg.RetryCount = e.RetryCount
	return err
}
