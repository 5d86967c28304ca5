package counters

import (
	"sort"

	"github.com/and161185/counters-admin/model"
)

// Rank returns a copy of counters ordered by value, largest first.
// Counters with equal values keep their input order.
func Rank(counters []model.Counter) []model.Counter {
	ranked := make([]model.Counter, len(counters))
	copy(ranked, counters)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return ranked
}
