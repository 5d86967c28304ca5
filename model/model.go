// Package model contains core data types for the project.
package model

// Metric is a named numeric value as held by a metric store.
type Metric struct {
	Name  string  `json:"name"`  // Raw storage name, e.g. "counter.requests".
	Value float64 `json:"value"` // Current value.
}

// Counter is a counter metric with the storage prefix stripped from its name.
type Counter struct {
	Name  string
	Value float64
}

// MetricResource is the shallow external shape of a counter: its name only.
type MetricResource struct {
	Name string `json:"name"`
}

// CounterResource is the deep external shape of a counter.
type CounterResource struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// PageMetadata describes the page actually returned.
type PageMetadata struct {
	Size          int `json:"size"`          // Number of items on this page.
	Number        int `json:"number"`        // Zero-based page index.
	TotalElements int `json:"totalElements"` // Items available across all pages.
}

// PagedResources is the page envelope sent to clients.
type PagedResources[R any] struct {
	Content []R          `json:"content"`
	Page    PageMetadata `json:"page"`
}
