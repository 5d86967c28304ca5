package counters

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/and161185/counters-admin/internal/counters MetricSource

import (
	"context"
	"fmt"

	"github.com/and161185/counters-admin/model"
)

// MetricSource is the metric store the counters are read from.
type MetricSource interface {
	// ListAll returns every metric in the store, counters or not.
	ListAll(ctx context.Context) ([]model.Metric, error)
	// FindOne returns the metric with the exact raw name or errs.ErrMetricNotFound.
	FindOne(ctx context.Context, name string) (*model.Metric, error)
	// Reset resets the metric with the raw name.
	Reset(ctx context.Context, name string) error
}

// Service exposes counter listing, lookup and reset over a MetricSource.
type Service struct {
	source MetricSource
}

// NewService creates a Service reading from source.
func NewService(source MetricSource) *Service {
	return &Service{source: source}
}

// List returns the window of counters selected by req, largest values first.
// A nil req returns every counter as a single page.
func (s *Service) List(ctx context.Context, req *PageRequest) (Page[model.Counter], error) {
	if err := req.Validate(); err != nil {
		return Page[model.Counter]{}, err
	}

	metrics, err := s.source.ListAll(ctx)
	if err != nil {
		return Page[model.Counter]{}, fmt.Errorf("failed to list metrics: %w", err)
	}

	return Window(Rank(Filter(metrics)), req)
}

// Display returns the deep resource of the counter with the given display name.
func (s *Service) Display(ctx context.Context, name string) (model.CounterResource, error) {
	c, err := s.find(ctx, name)
	if err != nil {
		return model.CounterResource{}, err
	}
	return ToCounterResource(c), nil
}

// Delete resets the counter with the given display name.
func (s *Service) Delete(ctx context.Context, name string) error {
	if _, err := s.find(ctx, name); err != nil {
		return err
	}
	if err := s.source.Reset(ctx, StorageName(name)); err != nil {
		return fmt.Errorf("failed to reset counter %q: %w", name, err)
	}
	return nil
}

func (s *Service) find(ctx context.Context, name string) (model.Counter, error) {
	m, err := s.source.FindOne(ctx, StorageName(name))
	if err != nil {
		return model.Counter{}, fmt.Errorf("counter %q: %w", name, err)
	}
	return ToCounter(*m), nil
}
