// Package testutils builds servers backed by in-memory storage for tests.
package testutils

import (
	"context"
	"testing"

	"github.com/and161185/counters-admin/internal/config"
	"github.com/and161185/counters-admin/internal/server"
	"github.com/and161185/counters-admin/model"
	"github.com/and161185/counters-admin/storage/inmemory"
	"go.uber.org/zap"
)

// NewTestServer returns a server over an empty in-memory store with a no-op logger.
func NewTestServer(ctx context.Context) *server.Server {
	return server.NewServer(inmemory.NewMemStorage(ctx), &config.ServerConfig{
		DefaultPageSize: config.DefaultPageSize,
		Logger:          zap.NewNop().Sugar(),
	})
}

// NewSeededTestServer returns a test server whose store already holds metrics.
func NewSeededTestServer(t testing.TB, metrics ...model.Metric) *server.Server {
	t.Helper()
	ctx := context.Background()
	st := inmemory.NewMemStorage(ctx)
	if err := st.SaveBatch(ctx, metrics); err != nil {
		t.Fatalf("failed to seed storage: %v", err)
	}
	return server.NewServer(st, &config.ServerConfig{
		DefaultPageSize: config.DefaultPageSize,
		Logger:          zap.NewNop().Sugar(),
	})
}
