package config

import (
	"encoding/json"
	"os"
	"time"
)

type serverJSON struct {
	Address         *string `json:"address"`
	Restore         *bool   `json:"restore"`
	StoreInterval   *string `json:"store_interval"` // "1s"
	StoreFile       *string `json:"store_file"`
	DatabaseDSN     *string `json:"database_dsn"`
	DefaultPageSize *int    `json:"default_page_size"`
	ShutdownTimeout *string `json:"shutdown_timeout"` // "10s"
}

type clientJSON struct {
	Address       *string `json:"address"`
	ClientTimeout *string `json:"client_timeout"`
	RetryCount    *int    `json:"retry_count"`
}

func loadServerJSON(path string) (*serverJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg serverJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadClientJSON(path string) (*clientJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c clientJSON
	return &c, json.Unmarshal(b, &c)
}

func parseDurationSeconds(s string) (int, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}
