package inmemory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/and161185/counters-admin/internal/errs"
	"github.com/and161185/counters-admin/model"
)

type MemStorage struct {
	metrics map[string]float64
	mu      sync.RWMutex
}

func NewMemStorage(ctx context.Context) *MemStorage {
	return &MemStorage{
		metrics: make(map[string]float64),
	}
}

// Save stores m, replacing any metric with the same name.
func (store *MemStorage) Save(ctx context.Context, m model.Metric) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.metrics[m.Name] = m.Value
	return nil
}

func (store *MemStorage) SaveBatch(ctx context.Context, metrics []model.Metric) error {
	for _, m := range metrics {
		if err := store.Save(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns a snapshot of every metric ordered by name.
func (store *MemStorage) ListAll(ctx context.Context) ([]model.Metric, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]model.Metric, 0, len(store.metrics))
	for name, value := range store.metrics {
		result = append(result, model.Metric{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (store *MemStorage) FindOne(ctx context.Context, name string) (*model.Metric, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	val, ok := store.metrics[name]
	if !ok {
		return nil, errs.ErrMetricNotFound
	}
	return &model.Metric{Name: name, Value: val}, nil
}

// Reset removes the metric. Unknown names are ignored.
func (store *MemStorage) Reset(ctx context.Context, name string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.metrics, name)
	return nil
}

func (store *MemStorage) SaveToFile(ctx context.Context, filePath string) error {
	metrics, err := store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get metrics: %w", err)
	}

	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (store *MemStorage) LoadFromFile(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var metrics []model.Metric
	if err := json.Unmarshal(data, &metrics); err != nil {
		return fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	if err := store.SaveBatch(ctx, metrics); err != nil {
		return fmt.Errorf("failed to restore metrics: %w", err)
	}

	return nil
}

func (store *MemStorage) Ping(ctx context.Context) error {
	return nil
}
