// internal/aggregate/aggregate.go
//
// Pure, side-effect-free transformations over in-memory inventory
// collections. Every function here is total: empty input yields a zero or
// empty result, never an error.
package aggregate

import (
	"sort"

	"github.com/inventorypro/insights/internal/domain"
)

// OutOfStock returns the items with quantity exactly zero. This is the set
// fed to AI alerting and out-of-stock reporting. It is NOT the dashboard
// low-stock predicate; see BelowReorderPoint.
func OutOfStock(items []domain.Item) []domain.Item {
	out := make([]domain.Item, 0)
	for _, it := range items {
		if it.Quantity == 0 {
			out = append(out, it)
		}
	}
	return out
}

// InStock returns the items with quantity above zero.
func InStock(items []domain.Item) []domain.Item {
	out := make([]domain.Item, 0)
	for _, it := range items {
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out
}

// BelowReorderPoint returns the items at or under their reorder point,
// including those already at zero. Used for the dashboard low-stock badge.
func BelowReorderPoint(items []domain.Item) []domain.Item {
	out := make([]domain.Item, 0)
	for _, it := range items {
		if it.Quantity <= it.ReorderPoint {
			out = append(out, it)
		}
	}
	return out
}

// CategoryItemCounts recomputes the per-category item count from the item
// set. Read-only reconciliation of the cached Category.ItemCount; the
// recomputed values are never persisted.
func CategoryItemCounts(items []domain.Item) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.CategoryID]++
	}
	return counts
}

// TotalInventoryValue is the sum of quantity times price over all items.
func TotalInventoryValue(items []domain.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

// TotalRevenue is the sum of quantity sold times the snapshotted unit price
// over the sales ledger.
func TotalRevenue(sold []domain.SoldItem) float64 {
	total := 0.0
	for _, s := range sold {
		total += float64(s.QuantitySold) * s.Price
	}
	return total
}

// TopNByQuantity returns up to n items sorted descending by quantity. The
// sort is stable so ties keep their insertion order and chart output stays
// deterministic.
func TopNByQuantity(items []domain.Item, n int) []domain.Item {
	if n <= 0 {
		return []domain.Item{}
	}
	sorted := append([]domain.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
