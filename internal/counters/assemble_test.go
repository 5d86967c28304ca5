package counters

import (
	"encoding/json"
	"testing"

	"github.com/and161185/counters-admin/model"
	"github.com/stretchr/testify/require"
)

func TestToCounterResource(t *testing.T) {
	tests := []struct {
		name    string
		counter model.Counter
		want    model.CounterResource
	}{
		{"whole", model.Counter{Name: "a", Value: 5}, model.CounterResource{Name: "a", Value: 5}},
		{"truncated", model.Counter{Name: "b", Value: 2.9}, model.CounterResource{Name: "b", Value: 2}},
		{"negative_truncated", model.Counter{Name: "c", Value: -2.9}, model.CounterResource{Name: "c", Value: -2}},
		{"empty_name", model.Counter{Name: "", Value: 1}, model.CounterResource{Name: "", Value: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ToCounterResource(tc.counter))
		})
	}
}

func TestToMetricResource(t *testing.T) {
	require.Equal(t, model.MetricResource{Name: "a"}, ToMetricResource(model.Counter{Name: "a", Value: 5}))
}

func TestAssemblePage_KeepsMetadata(t *testing.T) {
	p := Page[model.Counter]{
		Items:    []model.Counter{{Name: "b", Value: 2}},
		Metadata: model.PageMetadata{Size: 1, Number: 1, TotalElements: 2},
	}

	deep := AssemblePage(p, ToCounterResource)
	require.Equal(t, []model.CounterResource{{Name: "b", Value: 2}}, deep.Content)
	require.Equal(t, p.Metadata, deep.Page)

	shallow := AssemblePage(p, ToMetricResource)
	require.Equal(t, []model.MetricResource{{Name: "b"}}, shallow.Content)
	require.Equal(t, p.Metadata, shallow.Page)
}

func TestAssemblePage_WireShape(t *testing.T) {
	empty := AssemblePage(Page[model.Counter]{Items: []model.Counter{}, Metadata: model.PageMetadata{TotalElements: 2}}, ToCounterResource)

	b, err := json.Marshal(empty)
	require.NoError(t, err)
	require.JSONEq(t, `{"content":[],"page":{"size":0,"number":0,"totalElements":2}}`, string(b))

	full := AssemblePage(Page[model.Counter]{
		Items:    []model.Counter{{Name: "a", Value: 5}},
		Metadata: model.PageMetadata{Size: 1, Number: 0, TotalElements: 1},
	}, ToCounterResource)

	b, err = json.Marshal(full)
	require.NoError(t, err)
	require.JSONEq(t, `{"content":[{"name":"a","value":5}],"page":{"size":1,"number":0,"totalElements":1}}`, string(b))
}
