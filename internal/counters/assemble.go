package counters

import "github.com/and161185/counters-admin/model"

// ToMetricResource builds the shallow resource of a counter.
func ToMetricResource(c model.Counter) model.MetricResource {
	return model.MetricResource{Name: c.Name}
}

// ToCounterResource builds the deep resource of a counter.
// The value is truncated toward zero.
func ToCounterResource(c model.Counter) model.CounterResource {
	return model.CounterResource{Name: c.Name, Value: int64(c.Value)}
}

// AssemblePage converts every counter of p with assemble and keeps the page metadata.
func AssemblePage[R any](p Page[model.Counter], assemble func(model.Counter) R) model.PagedResources[R] {
	content := make([]R, 0, len(p.Items))
	for _, c := range p.Items {
		content = append(content, assemble(c))
	}
	return model.PagedResources[R]{Content: content, Page: p.Metadata}
}
