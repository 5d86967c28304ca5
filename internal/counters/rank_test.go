package counters

import (
	"testing"

	"github.com/and161185/counters-admin/model"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByValueDescending(t *testing.T) {
	in := []model.Counter{
		{Name: "low", Value: 1},
		{Name: "high", Value: 10},
		{Name: "mid", Value: 5},
	}

	got := Rank(in)

	require.Equal(t, []model.Counter{
		{Name: "high", Value: 10},
		{Name: "mid", Value: 5},
		{Name: "low", Value: 1},
	}, got)
	require.Equal(t, "low", in[0].Name, "input must not be reordered")
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	in := []model.Counter{
		{Name: "b", Value: 2},
		{Name: "a", Value: 3},
		{Name: "c", Value: 2},
		{Name: "d", Value: 2},
	}

	got := Rank(in)

	require.Equal(t, []string{"a", "b", "c", "d"}, names(got))
	require.Equal(t, got, Rank(in))
}

func TestRank_IsSortedPermutation(t *testing.T) {
	in := []model.Counter{
		{Name: "x", Value: -1}, {Name: "y", Value: 0}, {Name: "z", Value: 42},
		{Name: "w", Value: 0.5}, {Name: "v", Value: 42}, {Name: "u", Value: -7.25},
	}

	got := Rank(in)

	require.Len(t, got, len(in))
	require.ElementsMatch(t, in, got)
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Value, got[i].Value)
	}
}

func TestRank_Empty(t *testing.T) {
	require.Empty(t, Rank(nil))
}

func names(cs []model.Counter) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}
