// Package counters builds paged, ranked views of the counters held in a metric store.
package counters

import (
	"strings"

	"github.com/and161185/counters-admin/model"
)

// Prefix marks a stored metric as a counter.
const Prefix = "counter."

// IsCounter reports whether a raw metric name denotes a counter.
func IsCounter(name string) bool {
	return strings.HasPrefix(name, Prefix)
}

// StorageName converts a counter display name back to its raw metric name.
func StorageName(name string) string {
	return Prefix + name
}

// ToCounter strips the counter prefix from m. m must satisfy IsCounter.
func ToCounter(m model.Metric) model.Counter {
	return model.Counter{Name: strings.TrimPrefix(m.Name, Prefix), Value: m.Value}
}

// Filter keeps the counters among metrics, in input order.
func Filter(metrics []model.Metric) []model.Counter {
	result := make([]model.Counter, 0, len(metrics))
	for _, m := range metrics {
		if IsCounter(m.Name) {
			result = append(result, ToCounter(m))
		}
	}
	return result
}
